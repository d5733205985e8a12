package sass

import (
	"go/token"
	"strings"
)

// SimpleKind classifies a simple selector.
type SimpleKind int

const (
	SimpleType SimpleKind = iota
	SimpleClass
	SimpleID
	SimplePlaceholder
	SimplePseudoClass
	SimplePseudoElement
	SimpleAttribute
	SimpleUniversal
	SimpleParent // '&'
	SimpleInterp // '#{...}'
)

// SimpleSelector is a single simple selector such as '.btn', '%base',
// '#main', 'a', ':hover' or '[disabled]'.
type SimpleSelector struct {
	Kind     SimpleKind
	Name     string
	StartPos token.Position
	EndPos   token.Position
}

func (s SimpleSelector) Pos() token.Position { return s.StartPos }
func (s SimpleSelector) End() token.Position { return s.EndPos }

// Key returns the canonical lookup form of the selector:
// '.btn', '%base', '#main', 'a', ':hover', '::before', '[disabled]', '&', '*'.
func (s SimpleSelector) Key() string {
	switch s.Kind {
	case SimpleClass:
		return "." + s.Name
	case SimpleID:
		return "#" + s.Name
	case SimplePlaceholder:
		return "%" + s.Name
	case SimplePseudoClass:
		return ":" + s.Name
	case SimplePseudoElement:
		return "::" + s.Name
	case SimpleAttribute:
		return "[" + s.Name + "]"
	case SimpleUniversal:
		return "*"
	case SimpleParent:
		return "&"
	case SimpleInterp:
		return s.Name
	}
	return s.Name
}

// Pseudo reports whether the selector is a pseudo-class or pseudo-element.
func (s SimpleSelector) Pseudo() bool {
	return s.Kind == SimplePseudoClass || s.Kind == SimplePseudoElement
}

// CompoundSelector is a run of simple selectors with no combinator
// between them, e.g. 'a.btn:hover'.
type CompoundSelector struct {
	Raw      string
	Simples  []SimpleSelector
	StartPos token.Position
	EndPos   token.Position
}

func (c CompoundSelector) Pos() token.Position { return c.StartPos }
func (c CompoundSelector) End() token.Position { return c.EndPos }

// Contains reports whether any member of the compound has the given key.
func (c CompoundSelector) Contains(key string) bool {
	for _, s := range c.Simples {
		if s.Key() == key {
			return true
		}
	}
	return false
}

// HasParentRef reports whether the compound references '&'.
func (c CompoundSelector) HasParentRef() bool {
	for _, s := range c.Simples {
		if s.Kind == SimpleParent {
			return true
		}
	}
	return false
}

// Interpolated reports whether the compound contains an interpolation.
func (c CompoundSelector) Interpolated() bool {
	for _, s := range c.Simples {
		if s.Kind == SimpleInterp {
			return true
		}
	}
	return false
}

// ComplexSelector is a combinator-separated sequence of compounds,
// e.g. 'nav > ul li'. Combinators themselves are not retained; only
// the compound boundaries matter for extend analysis.
type ComplexSelector struct {
	Raw       string
	Compounds []CompoundSelector
	StartPos  token.Position
	EndPos    token.Position
}

func (c ComplexSelector) Pos() token.Position { return c.StartPos }
func (c ComplexSelector) End() token.Position { return c.EndPos }

// HasPseudo reports whether any compound carries a pseudo selector.
func (c ComplexSelector) HasPseudo() bool {
	for _, comp := range c.Compounds {
		for _, s := range comp.Simples {
			if s.Pseudo() {
				return true
			}
		}
	}
	return false
}

// SelectorList is a comma-separated list of complex selectors.
type SelectorList struct {
	Groups []ComplexSelector
}

// Pos returns the position of the first group.
func (l SelectorList) Pos() token.Position {
	if len(l.Groups) == 0 {
		return token.Position{}
	}
	return l.Groups[0].StartPos
}

// End returns the end position of the last group.
func (l SelectorList) End() token.Position {
	if len(l.Groups) == 0 {
		return token.Position{}
	}
	return l.Groups[len(l.Groups)-1].EndPos
}

// String joins the groups back into source form.
func (l SelectorList) String() string {
	raws := make([]string, 0, len(l.Groups))
	for _, g := range l.Groups {
		raws = append(raws, g.Raw)
	}
	return strings.Join(raws, ", ")
}

// parseSelectorList parses a token run (selector text between block
// boundaries) into a selector list. src is the file content the token
// positions refer to; raw text is recovered by offset slicing.
func parseSelectorList(src []byte, run []Token) SelectorList {
	var list SelectorList
	group := make([]Token, 0, len(run))

	flush := func() {
		cs, ok := parseComplexSelector(src, group)
		if ok {
			list.Groups = append(list.Groups, cs)
		}
		group = group[:0]
	}

	for _, tok := range run {
		if tok.Kind == Comma {
			flush()
			continue
		}
		group = append(group, tok)
	}
	flush()
	return list
}

func parseComplexSelector(src []byte, run []Token) (ComplexSelector, bool) {
	run = trimSpaceTokens(run)
	if len(run) == 0 {
		return ComplexSelector{}, false
	}

	cs := ComplexSelector{
		Raw:      rawText(src, run),
		StartPos: run[0].Pos,
		EndPos:   run[len(run)-1].End,
	}

	compound := make([]Token, 0, len(run))
	flush := func() {
		comp, ok := parseCompoundSelector(src, compound)
		if ok {
			cs.Compounds = append(cs.Compounds, comp)
		}
		compound = compound[:0]
	}

	for _, tok := range run {
		if tok.Kind == Space || isCombinator(tok) {
			flush()
			continue
		}
		compound = append(compound, tok)
	}
	flush()
	return cs, true
}

func parseCompoundSelector(src []byte, run []Token) (CompoundSelector, bool) {
	if len(run) == 0 {
		return CompoundSelector{}, false
	}

	comp := CompoundSelector{
		Raw:      rawText(src, run),
		StartPos: run[0].Pos,
		EndPos:   run[len(run)-1].End,
	}

	for i := 0; i < len(run); i++ {
		tok := run[i]
		switch {
		case tok.Kind == Delim && tok.Lit == ".":
			if i+1 < len(run) && run[i+1].Kind == Ident {
				comp.Simples = append(comp.Simples, SimpleSelector{
					Kind: SimpleClass, Name: run[i+1].Lit,
					StartPos: tok.Pos, EndPos: run[i+1].End,
				})
				i++
			} else if i+1 < len(run) && run[i+1].Kind == Interp {
				comp.Simples = append(comp.Simples, SimpleSelector{
					Kind: SimpleInterp, Name: "." + run[i+1].Lit,
					StartPos: tok.Pos, EndPos: run[i+1].End,
				})
				i++
			}
		case tok.Kind == Hash:
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleID, Name: tok.Lit,
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Placeholder:
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimplePlaceholder, Name: tok.Lit,
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Ident:
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleType, Name: tok.Lit,
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Delim && tok.Lit == "*":
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleUniversal, Name: "*",
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Delim && tok.Lit == "&":
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleParent, Name: "&",
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Interp:
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleInterp, Name: tok.Lit,
				StartPos: tok.Pos, EndPos: tok.End,
			})
		case tok.Kind == Colon:
			kind := SimplePseudoClass
			j := i + 1
			if j < len(run) && run[j].Kind == Colon {
				kind = SimplePseudoElement
				j++
			}
			if j < len(run) && run[j].Kind == Ident {
				name := run[j].Lit
				end := run[j].End
				// skip functional pseudo arguments: :not(...), :nth-child(...)
				if j+1 < len(run) && run[j+1].Kind == LParen {
					depth := 0
					for k := j + 1; k < len(run); k++ {
						switch run[k].Kind {
						case LParen:
							depth++
						case RParen:
							depth--
						}
						if depth == 0 {
							end = run[k].End
							j = k
							break
						}
					}
				}
				comp.Simples = append(comp.Simples, SimpleSelector{
					Kind: kind, Name: name,
					StartPos: tok.Pos, EndPos: end,
				})
				i = j
			}
		case tok.Kind == LBracket:
			name := ""
			end := tok.End
			for k := i + 1; k < len(run); k++ {
				if run[k].Kind == Ident && name == "" {
					name = run[k].Lit
				}
				if run[k].Kind == RBracket {
					end = run[k].End
					i = k
					break
				}
			}
			comp.Simples = append(comp.Simples, SimpleSelector{
				Kind: SimpleAttribute, Name: name,
				StartPos: tok.Pos, EndPos: end,
			})
		}
	}

	if len(comp.Simples) == 0 {
		return CompoundSelector{}, false
	}
	return comp, true
}

func isCombinator(tok Token) bool {
	return tok.Kind == Delim && (tok.Lit == ">" || tok.Lit == "+" || tok.Lit == "~")
}

func trimSpaceTokens(run []Token) []Token {
	for len(run) > 0 && run[0].Kind == Space {
		run = run[1:]
	}
	for len(run) > 0 && run[len(run)-1].Kind == Space {
		run = run[:len(run)-1]
	}
	return run
}

// rawText recovers the source text spanned by a token run.
func rawText(src []byte, run []Token) string {
	if len(run) == 0 {
		return ""
	}
	start := run[0].Pos.Offset
	end := run[len(run)-1].End.Offset
	if start < 0 || end > len(src) || start > end {
		return ""
	}
	return strings.TrimSpace(string(src[start:end]))
}

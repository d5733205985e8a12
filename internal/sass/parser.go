package sass

import (
	"fmt"
	"go/token"
	"os"
	"strings"
)

// parser consumes a pre-lexed token slice and builds the stylesheet tree.
type parser struct {
	src    []byte
	tokens []Token
	i      int
}

// Parse parses SCSS source into a File. filename is used for positions only.
func Parse(filename string, src []byte) (*File, error) {
	tokens, comments, err := tokenize(filename, src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}
	nodes, err := p.parseBlock(true)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:     filename,
		Nodes:    nodes,
		Comments: comments,
	}, nil
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src)
}

func (p *parser) cur() Token {
	return p.tokens[p.i]
}

// parseBlock parses statements until a closing brace (or EOF at the top
// level). The closing brace is consumed.
func (p *parser) parseBlock(topLevel bool) ([]Node, error) {
	var nodes []Node
	for {
		switch p.cur().Kind {
		case EOF:
			if !topLevel {
				return nil, fmt.Errorf("%s: unexpected end of file, missing '}'", p.cur().Pos)
			}
			return nodes, nil
		case RBrace:
			if topLevel {
				return nil, fmt.Errorf("%s: unexpected '}'", p.cur().Pos)
			}
			p.i++
			return nodes, nil
		}

		run, err := p.collectRun()
		if err != nil {
			return nil, err
		}

		switch p.cur().Kind {
		case LBrace:
			node, err := p.parseBlockStatement(run)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case Semicolon:
			end := p.cur().End
			p.i++
			node, err := p.parseStatement(run, end)
			if err != nil {
				return nil, err
			}
			if node != nil {
				nodes = append(nodes, node)
			}
		case RBrace, EOF:
			// final statement without trailing semicolon
			node, err := p.parseStatement(run, p.cur().Pos)
			if err != nil {
				return nil, err
			}
			if node != nil {
				nodes = append(nodes, node)
			}
		}
	}
}

// collectRun gathers tokens up to the next top-level '{', ';', '}' or EOF.
// Parentheses, brackets and interpolations shield their contents.
func (p *parser) collectRun() ([]Token, error) {
	var run []Token
	depth := 0
	for {
		tok := p.cur()
		switch tok.Kind {
		case EOF:
			return run, nil
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%s: unbalanced '%s'", tok.Pos, tok.Lit)
			}
		case LBrace, Semicolon, RBrace:
			if depth == 0 {
				return run, nil
			}
		}
		run = append(run, tok)
		p.i++
	}
}

// parseBlockStatement handles 'run {' forms: style rules and block at-rules.
func (p *parser) parseBlockStatement(run []Token) (Node, error) {
	lbrace := p.cur()
	p.i++ // consume '{'

	trimmed := trimSpaceTokens(run)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s: block without a selector", lbrace.Pos)
	}

	if trimmed[0].Kind == AtKeyword {
		return p.parseAtBlock(trimmed)
	}

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}

	selectors := parseSelectorList(p.src, trimmed)
	if len(selectors.Groups) == 0 {
		return nil, fmt.Errorf("%s: cannot parse selector %q", trimmed[0].Pos, rawText(p.src, trimmed))
	}

	return &Rule{
		Selectors: selectors,
		Body:      body,
		StartPos:  trimmed[0].Pos,
		EndPos:    p.prevEnd(),
	}, nil
}

// parseAtBlock handles at-rules that carry a block: @mixin, @include with
// content, @media, @supports, @function, @if, @each, ...
func (p *parser) parseAtBlock(run []Token) (Node, error) {
	kw := run[0]
	params := trimSpaceTokens(run[1:])

	body, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}
	end := p.prevEnd()

	switch kw.Lit {
	case "mixin":
		name, rest := splitLeadingIdent(params)
		if name == "" {
			return nil, fmt.Errorf("%s: @mixin requires a name", kw.Pos)
		}
		return &MixinDecl{
			Name:     name,
			Params:   rawText(p.src, rest),
			Body:     body,
			StartPos: kw.Pos,
			EndPos:   end,
		}, nil
	case "include":
		name, rest := splitLeadingIdent(params)
		if name == "" {
			return nil, fmt.Errorf("%s: @include requires a name", kw.Pos)
		}
		return &IncludeDirective{
			Name:     name,
			Args:     rawText(p.src, rest),
			Body:     body,
			HasBody:  true,
			StartPos: kw.Pos,
			EndPos:   end,
		}, nil
	default:
		return &AtRule{
			Name:     kw.Lit,
			Params:   rawText(p.src, params),
			Body:     body,
			HasBody:  true,
			StartPos: kw.Pos,
			EndPos:   end,
		}, nil
	}
}

// parseStatement handles semicolon-terminated forms: declarations and
// statement at-rules. Returns nil for an empty statement.
func (p *parser) parseStatement(run []Token, end token.Position) (Node, error) {
	run = trimSpaceTokens(run)
	if len(run) == 0 {
		return nil, nil
	}

	if run[0].Kind == AtKeyword {
		return p.parseAtStatement(run, end)
	}

	// variable assignment: $name: value
	if run[0].Kind == Variable {
		return &Declaration{
			Property: "$" + run[0].Lit,
			Value:    rawText(p.src, declValue(run)),
			StartPos: run[0].Pos,
			EndPos:   end,
		}, nil
	}

	colon := topLevelColon(run)
	if colon < 0 {
		return nil, fmt.Errorf("%s: expected declaration, got %q", run[0].Pos, rawText(p.src, run))
	}

	return &Declaration{
		Property: rawText(p.src, run[:colon]),
		Value:    rawText(p.src, run[colon+1:]),
		StartPos: run[0].Pos,
		EndPos:   end,
	}, nil
}

func (p *parser) parseAtStatement(run []Token, end token.Position) (Node, error) {
	kw := run[0]
	params := trimSpaceTokens(run[1:])

	switch kw.Lit {
	case "extend":
		return p.parseExtend(kw, params, end)
	case "include":
		name, rest := splitLeadingIdent(params)
		if name == "" {
			return nil, fmt.Errorf("%s: @include requires a name", kw.Pos)
		}
		return &IncludeDirective{
			Name:     name,
			Args:     rawText(p.src, rest),
			StartPos: kw.Pos,
			EndPos:   end,
		}, nil
	default:
		return &AtRule{
			Name:     kw.Lit,
			Params:   rawText(p.src, params),
			StartPos: kw.Pos,
			EndPos:   end,
		}, nil
	}
}

func (p *parser) parseExtend(kw Token, params []Token, end token.Position) (Node, error) {
	optional := false
	// trailing '!optional' flag
	if n := len(params); n >= 2 &&
		params[n-1].Kind == Ident && params[n-1].Lit == "optional" &&
		params[n-2].Kind == Bang {
		optional = true
		params = trimSpaceTokens(params[:n-2])
	}

	if len(params) == 0 {
		return nil, fmt.Errorf("%s: @extend requires a selector", kw.Pos)
	}

	ext := &ExtendDirective{
		RawTarget: rawText(p.src, params),
		Optional:  optional,
		StartPos:  kw.Pos,
		EndPos:    end,
	}

	for _, tok := range params {
		if tok.Kind == Interp {
			ext.Interpolated = true
		}
	}
	if !ext.Interpolated {
		list := parseSelectorList(p.src, params)
		if len(list.Groups) != 1 || len(list.Groups[0].Compounds) != 1 {
			return nil, fmt.Errorf("%s: @extend target must be a compound selector, got %q", kw.Pos, ext.RawTarget)
		}
		ext.Target = list.Groups[0].Compounds[0]
	}
	return ext, nil
}

// prevEnd is the end position of the most recently consumed token.
func (p *parser) prevEnd() token.Position {
	if p.i == 0 {
		return p.tokens[0].Pos
	}
	return p.tokens[p.i-1].End
}

// splitLeadingIdent splits a token run into its first identifier and
// the remaining tokens.
func splitLeadingIdent(run []Token) (string, []Token) {
	run = trimSpaceTokens(run)
	if len(run) == 0 || run[0].Kind != Ident {
		return "", run
	}
	return run[0].Lit, trimSpaceTokens(run[1:])
}

// declValue returns the value tokens of a '$var: value' run.
func declValue(run []Token) []Token {
	if colon := topLevelColon(run); colon >= 0 {
		return trimSpaceTokens(run[colon+1:])
	}
	return nil
}

// topLevelColon finds the first colon outside parens and brackets.
func topLevelColon(run []Token) int {
	depth := 0
	for i, tok := range run {
		switch tok.Kind {
		case LParen, LBracket:
			depth++
		case RParen, RBracket:
			depth--
		case Colon:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Extensions lists the file extensions the parser accepts.
var Extensions = []string{".scss", ".css"}

// Supported reports whether path has a parseable extension.
func Supported(path string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

package sass

import "go/token"

// Node is implemented by every syntax element of a stylesheet.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// File is a parsed stylesheet.
type File struct {
	Name     string
	Nodes    []Node
	Comments []Comment
}

// Comment is a '//' or '/* */' comment.
// Line reports whether it is a '//' comment.
type Comment struct {
	Text     string
	Line     bool
	StartPos token.Position
	EndPos   token.Position
}

func (c Comment) Pos() token.Position { return c.StartPos }
func (c Comment) End() token.Position { return c.EndPos }

// Rule is a style rule: a selector list followed by a block.
type Rule struct {
	Selectors SelectorList
	Body      []Node
	StartPos  token.Position
	EndPos    token.Position
}

func (r *Rule) Pos() token.Position { return r.StartPos }
func (r *Rule) End() token.Position { return r.EndPos }

// Declaration is a 'property: value;' entry inside a rule block.
type Declaration struct {
	Property string
	Value    string
	StartPos token.Position
	EndPos   token.Position
}

func (d *Declaration) Pos() token.Position { return d.StartPos }
func (d *Declaration) End() token.Position { return d.EndPos }

// ExtendDirective is an '@extend target;' statement.
//
// Target holds the parsed compound selector when the target is static.
// When the target contains interpolation, Interpolated is set and Target
// is left empty; analyzers are expected to skip such extends.
type ExtendDirective struct {
	RawTarget    string
	Target       CompoundSelector
	Optional     bool
	Interpolated bool
	StartPos     token.Position
	EndPos       token.Position
}

func (e *ExtendDirective) Pos() token.Position { return e.StartPos }
func (e *ExtendDirective) End() token.Position { return e.EndPos }

// MixinDecl is a '@mixin name(params) { ... }' declaration.
type MixinDecl struct {
	Name     string
	Params   string
	Body     []Node
	StartPos token.Position
	EndPos   token.Position
}

func (m *MixinDecl) Pos() token.Position { return m.StartPos }
func (m *MixinDecl) End() token.Position { return m.EndPos }

// IncludeDirective is an '@include name(args);' statement,
// optionally with a content block.
type IncludeDirective struct {
	Name     string
	Args     string
	Body     []Node
	HasBody  bool
	StartPos token.Position
	EndPos   token.Position
}

func (i *IncludeDirective) Pos() token.Position { return i.StartPos }
func (i *IncludeDirective) End() token.Position { return i.EndPos }

// AtRule is any at-rule the parser does not model specially:
// @media, @supports, @use, @import, @charset, @if, @each, @function, ...
// Body is nil when the rule is terminated by a semicolon.
type AtRule struct {
	Name     string
	Params   string
	Body     []Node
	HasBody  bool
	StartPos token.Position
	EndPos   token.Position
}

func (a *AtRule) Pos() token.Position { return a.StartPos }
func (a *AtRule) End() token.Position { return a.EndPos }

// Conditional reports whether the at-rule scopes its contents the way
// @media does. Sass forbids extending across such boundaries.
func (a *AtRule) Conditional() bool {
	switch a.Name {
	case "media", "supports", "document":
		return true
	}
	return false
}

package sass

import "go/token"

// Kind identifies the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	Ident
	AtKeyword   // @media, @extend; Lit holds the keyword without '@'
	Hash        // #main; Lit holds the name without '#'
	Placeholder // %button; Lit holds the name without '%'
	Variable    // $size; Lit holds the name without '$'
	Number
	String // quoted string, quotes included in Lit
	Interp // #{...} interpolation, kept opaque, braces included in Lit
	Space  // run of whitespace
	Comma
	Semicolon
	Colon
	Bang
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Delim // any other single character; Lit holds it
)

// Token is a single lexical unit of an SCSS source file.
type Token struct {
	Kind Kind
	Lit  string
	Pos  token.Position // position of the first character
	End  token.Position // position one past the last character
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case AtKeyword:
		return "AtKeyword"
	case Hash:
		return "Hash"
	case Placeholder:
		return "Placeholder"
	case Variable:
		return "Variable"
	case Number:
		return "Number"
	case String:
		return "String"
	case Interp:
		return "Interp"
	case Space:
		return "Space"
	case Comma:
		return "Comma"
	case Semicolon:
		return "Semicolon"
	case Colon:
		return "Colon"
	case Bang:
		return "Bang"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Delim:
		return "Delim"
	}
	return "Unknown"
}

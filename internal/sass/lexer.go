package sass

import (
	"fmt"
	"go/token"
	"strings"
)

// lexer turns SCSS source bytes into a token stream.
// Comments are not emitted as tokens; they are collected separately
// so that directive comments keep their positions.
type lexer struct {
	src      []byte
	filename string
	off      int
	line     int
	col      int
	comments []Comment
}

func newLexer(filename string, src []byte) *lexer {
	return &lexer{
		src:      src,
		filename: filename,
		line:     1,
		col:      1,
	}
}

func (l *lexer) position() token.Position {
	return token.Position{
		Filename: l.filename,
		Offset:   l.off,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *lexer) peek() byte {
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

func (l *lexer) peekAt(n int) byte {
	if l.off+n >= len(l.src) {
		return 0
	}
	return l.src[l.off+n]
}

func (l *lexer) advance() byte {
	ch := l.src[l.off]
	l.off++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// next returns the next token, skipping comments.
func (l *lexer) next() (Token, error) {
	for {
		if l.off >= len(l.src) {
			pos := l.position()
			return Token{Kind: EOF, Pos: pos, End: pos}, nil
		}

		ch := l.peek()
		switch {
		case isSpace(ch):
			return l.lexSpace(), nil
		case ch == '/' && l.peekAt(1) == '/':
			l.lexLineComment()
			continue
		case ch == '/' && l.peekAt(1) == '*':
			if err := l.lexBlockComment(); err != nil {
				return Token{}, err
			}
			continue
		case ch == '"' || ch == '\'':
			return l.lexString()
		case ch == '#' && l.peekAt(1) == '{':
			return l.lexInterp()
		case ch == '#' && isIdentPart(l.peekAt(1)):
			return l.lexNamed(Hash), nil
		case ch == '%' && isIdentStart(l.peekAt(1)):
			return l.lexNamed(Placeholder), nil
		case ch == '$' && isIdentStart(l.peekAt(1)):
			return l.lexNamed(Variable), nil
		case ch == '@' && isIdentStart(l.peekAt(1)):
			return l.lexNamed(AtKeyword), nil
		case isDigit(ch) || (ch == '.' && isDigit(l.peekAt(1))):
			return l.lexNumber(), nil
		case isIdentStart(ch) || (ch == '-' && isIdentStart(l.peekAt(1))):
			return l.lexIdent(), nil
		default:
			return l.lexPunct(), nil
		}
	}
}

func (l *lexer) lexSpace() Token {
	pos := l.position()
	var sb strings.Builder
	for l.off < len(l.src) && isSpace(l.peek()) {
		sb.WriteByte(l.advance())
	}
	return Token{Kind: Space, Lit: sb.String(), Pos: pos, End: l.position()}
}

func (l *lexer) lexLineComment() {
	pos := l.position()
	var sb strings.Builder
	for l.off < len(l.src) && l.peek() != '\n' {
		sb.WriteByte(l.advance())
	}
	l.comments = append(l.comments, Comment{
		Text:     sb.String(),
		Line:     true,
		StartPos: pos,
		EndPos:   l.position(),
	})
}

func (l *lexer) lexBlockComment() error {
	pos := l.position()
	var sb strings.Builder
	sb.WriteByte(l.advance()) // '/'
	sb.WriteByte(l.advance()) // '*'
	for {
		if l.off >= len(l.src) {
			return fmt.Errorf("%s: unterminated block comment", pos)
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			sb.WriteByte(l.advance())
			sb.WriteByte(l.advance())
			break
		}
		sb.WriteByte(l.advance())
	}
	l.comments = append(l.comments, Comment{
		Text:     sb.String(),
		StartPos: pos,
		EndPos:   l.position(),
	})
	return nil
}

func (l *lexer) lexString() (Token, error) {
	pos := l.position()
	quote := l.peek()
	var sb strings.Builder
	sb.WriteByte(l.advance())
	for {
		if l.off >= len(l.src) {
			return Token{}, fmt.Errorf("%s: unterminated string", pos)
		}
		ch := l.advance()
		sb.WriteByte(ch)
		if ch == '\\' && l.off < len(l.src) {
			sb.WriteByte(l.advance())
			continue
		}
		if ch == quote {
			break
		}
	}
	return Token{Kind: String, Lit: sb.String(), Pos: pos, End: l.position()}, nil
}

// lexInterp consumes a #{...} interpolation as a single opaque token.
// Nested braces inside the interpolation are balanced.
func (l *lexer) lexInterp() (Token, error) {
	pos := l.position()
	var sb strings.Builder
	sb.WriteByte(l.advance()) // '#'
	sb.WriteByte(l.advance()) // '{'
	depth := 1
	for depth > 0 {
		if l.off >= len(l.src) {
			return Token{}, fmt.Errorf("%s: unterminated interpolation", pos)
		}
		ch := l.advance()
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
		}
		sb.WriteByte(ch)
	}
	return Token{Kind: Interp, Lit: sb.String(), Pos: pos, End: l.position()}, nil
}

// lexNamed handles '#name', '%name', '$name' and '@name' tokens.
// The literal excludes the sigil.
func (l *lexer) lexNamed(kind Kind) Token {
	pos := l.position()
	l.advance() // sigil
	var sb strings.Builder
	for l.off < len(l.src) && isIdentPart(l.peek()) {
		sb.WriteByte(l.advance())
	}
	return Token{Kind: kind, Lit: sb.String(), Pos: pos, End: l.position()}
}

func (l *lexer) lexNumber() Token {
	pos := l.position()
	var sb strings.Builder
	for l.off < len(l.src) && (isDigit(l.peek()) || l.peek() == '.') {
		sb.WriteByte(l.advance())
	}
	return Token{Kind: Number, Lit: sb.String(), Pos: pos, End: l.position()}
}

func (l *lexer) lexIdent() Token {
	pos := l.position()
	var sb strings.Builder
	for l.off < len(l.src) && isIdentPart(l.peek()) {
		sb.WriteByte(l.advance())
	}
	return Token{Kind: Ident, Lit: sb.String(), Pos: pos, End: l.position()}
}

func (l *lexer) lexPunct() Token {
	pos := l.position()
	ch := l.advance()
	kind := Delim
	switch ch {
	case ',':
		kind = Comma
	case ';':
		kind = Semicolon
	case ':':
		kind = Colon
	case '!':
		kind = Bang
	case '{':
		kind = LBrace
	case '}':
		kind = RBrace
	case '(':
		kind = LParen
	case ')':
		kind = RParen
	case '[':
		kind = LBracket
	case ']':
		kind = RBracket
	}
	return Token{Kind: kind, Lit: string(ch), Pos: pos, End: l.position()}
}

// tokenize runs the lexer over the whole input.
func tokenize(filename string, src []byte) ([]Token, []Comment, error) {
	lx := newLexer(filename, src)
	var tokens []Token
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens, lx.comments, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}

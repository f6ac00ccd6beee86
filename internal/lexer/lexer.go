package lexer

import (
	"unicode/utf8"

	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
)

// Lexer walks the source text one character at a time. Tokens carry the
// exact consumed substring; escape decoding is the parser's job.
type Lexer struct {
	input        string
	position     int  // byte offset of the current char
	readPosition int  // byte offset after the current char
	ch           rune // current char under examination, 0 at end
	start        int  // byte offset where the current token began
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Lex tokenizes the whole input, skipping whitespace and line comments.
// It stops at the first malformed token; no partial token list is
// returned.
func Lex(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for l.ch != 0 {
		if isWhitespace(l.ch) {
			l.readChar()
			continue
		}
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipComment()
			continue
		}
		tok, err := l.lexToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

// emit builds a token from every character consumed since lexToken started.
func (l *Lexer) emit(typ token.Type) token.Token {
	return token.Token{Type: typ, Literal: l.input[l.start:l.position], Offset: l.start}
}

func (l *Lexer) skipComment() {
	// consume "//" and everything up to, but excluding, the newline
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
}

func (l *Lexer) lexToken() (token.Token, error) {
	l.start = l.position
	switch {
	case isIdentStart(l.ch):
		return l.lexIdentifier(), nil
	case isDigit(l.ch), (l.ch == '+' || l.ch == '-') && isDigit(l.peekChar()):
		return l.lexNumber()
	case l.ch == '\'':
		return l.lexCharacter()
	case l.ch == '"':
		return l.lexString()
	case l.ch == utf8.RuneError && l.readPosition-l.position == 1:
		return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL001, l.position, "invalid UTF-8 byte")
	default:
		return l.lexOperator(), nil
	}
}

// identifier ::= [A-Za-z_] [A-Za-z0-9_-]*
func (l *Lexer) lexIdentifier() token.Token {
	l.readChar()
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.emit(token.IDENTIFIER)
}

// number ::= [+-]? [0-9]+ ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?
// A fractional part makes it a DECIMAL; an exponent alone does not.
func (l *Lexer) lexNumber() (token.Token, error) {
	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	typ := token.INTEGER
	if l.ch == '.' {
		l.readChar()
		if !isDigit(l.ch) {
			return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL002, l.position, "expected digit after decimal point")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
		typ = token.DECIMAL
	}
	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL002, l.position, "expected digit in exponent")
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.emit(typ), nil
}

// character ::= ['] (escape | [^'\n\r\\]) [']
func (l *Lexer) lexCharacter() (token.Token, error) {
	l.readChar() // opening quote
	switch {
	case l.ch == 0:
		return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL003, l.position, "unterminated character literal")
	case l.ch == '\\':
		l.readChar()
		if err := l.lexEscape(); err != nil {
			return token.Token{}, err
		}
	case l.ch == '\'' || l.ch == '\n' || l.ch == '\r':
		return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL003, l.position, "invalid character literal")
	default:
		l.readChar()
	}
	if l.ch != '\'' {
		return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL003, l.position, "unterminated character literal")
	}
	l.readChar() // closing quote
	return l.emit(token.CHARACTER), nil
}

// string ::= '"' (escape | [^"\n\r\\])* '"'
func (l *Lexer) lexString() (token.Token, error) {
	l.readChar() // opening quote
	for l.ch != 0 && l.ch != '"' {
		if l.ch == '\n' || l.ch == '\r' {
			return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL004, l.position, "newline in string literal")
		}
		if l.ch == '\\' {
			l.readChar()
			if err := l.lexEscape(); err != nil {
				return token.Token{}, err
			}
			continue
		}
		l.readChar()
	}
	if l.ch != '"' {
		return token.Token{}, diagnostics.NewLexError(diagnostics.ErrL004, l.position, "unterminated string literal")
	}
	l.readChar() // closing quote
	return l.emit(token.STRING), nil
}

// escape ::= '\' [bnrt'"\]
// The backslash is already consumed; the current char must be the escape
// letter.
func (l *Lexer) lexEscape() error {
	switch l.ch {
	case 'b', 'n', 'r', 't', '\'', '"', '\\':
		l.readChar()
		return nil
	default:
		return diagnostics.NewLexError(diagnostics.ErrL005, l.position, "invalid escape sequence")
	}
}

// operator ::= [<>!=] '='? | any single char outside identifiers, numbers,
// quotes and whitespace. The dispatch in lexToken guarantees the latter
// class here.
func (l *Lexer) lexOperator() token.Token {
	if l.ch == '<' || l.ch == '>' || l.ch == '!' || l.ch == '=' {
		l.readChar()
		if l.ch == '=' {
			l.readChar()
		}
		return l.emit(token.OPERATOR)
	}
	l.readChar()
	return l.emit(token.OPERATOR)
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\b'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}

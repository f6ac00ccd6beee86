// Package parser turns a token sequence into an AST by recursive descent.
// Each grammar rule has a dedicated method; operator precedence is encoded
// by the rule layering (logical > comparison > additive > multiplicative >
// secondary > primary). The first structural violation aborts the whole
// parse; there is no error recovery.
package parser

import (
	"math/big"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
)

type Parser struct {
	tokens []token.Token
	index  int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource parses the whole token stream as a program.
func ParseSource(tokens []token.Token) (*ast.Source, error) {
	p := New(tokens)
	source, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	return source, nil
}

// ParseStatement parses the stream as exactly one statement.
func ParseStatement(tokens []token.Token) (ast.Statement, error) {
	p := New(tokens)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseExpression parses the stream as exactly one expression.
func ParseExpression(tokens []token.Token) (ast.Expression, error) {
	p := New(tokens)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseSource() (*ast.Source, error) {
	var statements []ast.Statement
	for p.has(0) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.Source{Statements: statements}, nil
}

func (p *Parser) expectEnd() error {
	if p.has(0) {
		return p.errorHere(diagnostics.ErrP001, "expected end of input")
	}
	return nil
}

// --- token stream ---

// has reports whether a token exists at index+offset.
func (p *Parser) has(offset int) bool {
	return p.index+offset < len(p.tokens)
}

// get returns the token at index+offset. offset -1 is the token just
// consumed by match.
func (p *Parser) get(offset int) token.Token {
	return p.tokens[p.index+offset]
}

// peek reports whether the upcoming tokens match the given patterns. Each
// pattern is either a token.Type, matching by kind, or a string, matching
// by exact literal.
func (p *Parser) peek(patterns ...interface{}) bool {
	if !p.has(len(patterns) - 1) {
		return false
	}
	for offset, pattern := range patterns {
		tok := p.get(offset)
		switch pat := pattern.(type) {
		case token.Type:
			if tok.Type != pat {
				return false
			}
		case string:
			if !tok.Is(pat) {
				return false
			}
		default:
			panic("parser: pattern must be token.Type or string")
		}
	}
	return true
}

// match is peek plus advancing past the matched tokens.
func (p *Parser) match(patterns ...interface{}) bool {
	if !p.peek(patterns...) {
		return false
	}
	p.index += len(patterns)
	return true
}

// errorHere builds a parse error at the next token, or at end of input.
func (p *Parser) errorHere(code, format string, args ...interface{}) error {
	if p.has(0) {
		tok := p.get(0)
		return diagnostics.NewParseError(code, &tok, format, args...)
	}
	return diagnostics.NewParseError(code, nil, format, args...)
}

// --- literal decoding ---

// decodeEscapes maps the two-character escape sequences from the lexer
// (\b \n \r \t \' \" \\) to their characters. The lexer has already
// validated them.
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		switch r {
		case 'b':
			b.WriteRune('\b')
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		default: // ' " \
			b.WriteRune(r)
		}
		escaped = false
	}
	return b.String()
}

func decodeCharacter(literal string) rune {
	body := decodeEscapes(literal[1 : len(literal)-1])
	r := []rune(body)
	return r[0]
}

func decodeString(literal string) string {
	return decodeEscapes(literal[1 : len(literal)-1])
}

func newInteger(literal string) *big.Int {
	if i, ok := new(big.Int).SetString(literal, 10); ok {
		return i
	}
	// INTEGER tokens may carry an exponent ("2e3" stays tagged INTEGER);
	// route those through a float with enough precision to stay exact.
	f, _, _ := big.ParseFloat(literal, 10, uint(4*len(literal)+64), big.ToNearestEven)
	i, _ := f.Int(nil)
	return i
}

func newDecimal(literal string) *big.Float {
	f, _, _ := big.ParseFloat(literal, 10, 256, big.ToNearestEven)
	return f
}

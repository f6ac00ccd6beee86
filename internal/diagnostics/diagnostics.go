// Package diagnostics defines the error values produced by the lexer,
// parser and evaluator. Every error carries a stable code (L### lex,
// P### parse, E### evaluate) plus whatever locating context the phase has:
// a byte offset, the offending token, or a rendering of the offending AST
// node.
package diagnostics

import (
	"errors"
	"fmt"

	"github.com/quill-lang/quill/internal/token"
)

// Lexer error codes.
const (
	ErrL001 = "L001" // illegal character
	ErrL002 = "L002" // malformed number
	ErrL003 = "L003" // malformed character literal
	ErrL004 = "L004" // unterminated string
	ErrL005 = "L005" // invalid escape sequence
)

// Parser error codes.
const (
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // unexpected end of input
	ErrP003 = "P003" // invalid assignment target
)

// Evaluator error codes.
const (
	ErrE001 = "E001" // duplicate binding
	ErrE002 = "E002" // undefined variable
	ErrE003 = "E003" // undefined property
	ErrE004 = "E004" // arity mismatch
	ErrE005 = "E005" // type mismatch
	ErrE006 = "E006" // return outside function
)

type Error struct {
	Code    string
	Message string

	// Offset is the byte offset into the source for lexer errors, -1
	// otherwise.
	Offset int
	// Token is the offending token for parser errors. AtEnd is set instead
	// when the parser ran out of input.
	Token *token.Token
	AtEnd bool
	// Node is a rendering of the offending AST node for evaluator errors,
	// empty when the error has no single originating node.
	Node string
}

func (e *Error) Error() string {
	switch {
	case e.Offset >= 0:
		return fmt.Sprintf("%s: %s (offset %d)", e.Code, e.Message, e.Offset)
	case e.Token != nil:
		return fmt.Sprintf("%s: %s (at %q)", e.Code, e.Message, e.Token.Literal)
	case e.AtEnd:
		return fmt.Sprintf("%s: %s (at end of input)", e.Code, e.Message)
	case e.Node != "":
		return fmt.Sprintf("%s: %s (in %s)", e.Code, e.Message, e.Node)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// NewLexError reports a malformed token at the given byte offset.
func NewLexError(code string, offset int, format string, args ...interface{}) *Error {
	return &Error{Code: code, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// NewParseError reports a structural violation at tok. A nil tok means the
// parser hit the end of the token stream.
func NewParseError(code string, tok *token.Token, format string, args ...interface{}) *Error {
	return &Error{Code: code, Offset: -1, Token: tok, AtEnd: tok == nil, Message: fmt.Sprintf(format, args...)}
}

// NewEvalError reports a runtime failure. node is a rendering of the
// originating AST node and may be empty (e.g. for errors raised inside
// native functions).
func NewEvalError(code string, node string, format string, args ...interface{}) *Error {
	return &Error{Code: code, Offset: -1, Node: node, Message: fmt.Sprintf(format, args...)}
}

// Code extracts the diagnostic code from err, or "" if err is not a
// diagnostics error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

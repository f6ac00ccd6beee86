package token

// Type classifies a token. The set is closed: anything driving the
// lexer/parser pipeline directly (the REPL, debug dumps) relies on exactly
// these six kinds.
type Type string

const (
	IDENTIFIER Type = "IDENTIFIER"
	INTEGER    Type = "INTEGER"
	DECIMAL    Type = "DECIMAL"
	CHARACTER  Type = "CHARACTER"
	STRING     Type = "STRING"
	OPERATOR   Type = "OPERATOR"
)

// Token is a classified slice of source text. Literal is always the exact
// consumed substring, surrounding quotes included for CHARACTER and STRING;
// escape decoding happens later, in the parser. Offset is the byte offset of
// the token's first character and exists only for error reporting.
type Token struct {
	Type    Type
	Literal string
	Offset  int
}

// Is reports whether the token's literal is exactly s. Keywords (LET, DEF,
// DO, END, ...) are ordinary IDENTIFIER tokens, so the parser matches them
// by literal.
func (t Token) Is(s string) bool {
	return t.Literal == s
}

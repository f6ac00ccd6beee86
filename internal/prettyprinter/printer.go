// Package prettyprinter renders AST nodes back into canonical source form.
// The output is one line, normalized whitespace, with escape sequences
// re-encoded. Parser tests compare against it, and the CLI uses it for
// --ast dumps.
package prettyprinter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
)

// Print renders any AST node. The node set is closed, so an unknown node
// is a programming error.
func Print(node ast.Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Source:
		writeStatements(b, n.Statements)
	case ast.Statement:
		writeStatement(b, n)
	case ast.Expression:
		writeExpression(b, n)
	default:
		panic(fmt.Sprintf("prettyprinter: unknown node %T", node))
	}
}

func writeStatements(b *strings.Builder, stmts []ast.Statement) {
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeStatement(b, stmt)
	}
}

func writeStatement(b *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Let:
		b.WriteString("LET ")
		b.WriteString(s.Name)
		if s.Value != nil {
			b.WriteString(" = ")
			writeExpression(b, s.Value)
		}
		b.WriteByte(';')
	case *ast.Def:
		b.WriteString("DEF ")
		b.WriteString(s.Name)
		b.WriteByte('(')
		b.WriteString(strings.Join(s.Parameters, ", "))
		b.WriteString(") DO")
		writeBlock(b, s.Body)
		b.WriteString(" END")
	case *ast.If:
		b.WriteString("IF ")
		writeExpression(b, s.Condition)
		b.WriteString(" DO")
		writeBlock(b, s.Then)
		if len(s.Else) > 0 {
			b.WriteString(" ELSE")
			writeBlock(b, s.Else)
		}
		b.WriteString(" END")
	case *ast.For:
		b.WriteString("FOR ")
		b.WriteString(s.Name)
		b.WriteString(" IN ")
		writeExpression(b, s.Iterable)
		b.WriteString(" DO")
		writeBlock(b, s.Body)
		b.WriteString(" END")
	case *ast.Return:
		b.WriteString("RETURN")
		if s.Value != nil {
			b.WriteByte(' ')
			writeExpression(b, s.Value)
		}
		b.WriteByte(';')
	case *ast.ExpressionStatement:
		writeExpression(b, s.Expression)
		b.WriteByte(';')
	case *ast.Assignment:
		writeExpression(b, s.Target)
		b.WriteString(" = ")
		writeExpression(b, s.Value)
		b.WriteByte(';')
	default:
		panic(fmt.Sprintf("prettyprinter: unknown statement %T", stmt))
	}
}

func writeBlock(b *strings.Builder, stmts []ast.Statement) {
	for _, stmt := range stmts {
		b.WriteByte(' ')
		writeStatement(b, stmt)
	}
}

func writeExpression(b *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Literal:
		b.WriteString(formatLiteral(e.Value))
	case *ast.Group:
		b.WriteByte('(')
		writeExpression(b, e.Expression)
		b.WriteByte(')')
	case *ast.Binary:
		writeExpression(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Operator)
		b.WriteByte(' ')
		writeExpression(b, e.Right)
	case *ast.Variable:
		b.WriteString(e.Name)
	case *ast.Property:
		writeExpression(b, e.Receiver)
		b.WriteByte('.')
		b.WriteString(e.Name)
	case *ast.Function:
		b.WriteString(e.Name)
		writeArguments(b, e.Arguments)
	case *ast.Method:
		writeExpression(b, e.Receiver)
		b.WriteByte('.')
		b.WriteString(e.Name)
		writeArguments(b, e.Arguments)
	case *ast.ObjectExpr:
		b.WriteString("OBJECT")
		if e.Name != "" {
			b.WriteByte(' ')
			b.WriteString(e.Name)
		}
		b.WriteString(" DO")
		for _, let := range e.Lets {
			b.WriteByte(' ')
			writeStatement(b, let)
		}
		for _, def := range e.Defs {
			b.WriteByte(' ')
			writeStatement(b, def)
		}
		b.WriteString(" END")
	default:
		panic(fmt.Sprintf("prettyprinter: unknown expression %T", expr))
	}
}

func writeArguments(b *strings.Builder, args []ast.Expression) {
	b.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpression(b, arg)
	}
	b.WriteByte(')')
}

func formatLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NIL"
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case *big.Int:
		return v.String()
	case *big.Float:
		return FormatDecimal(v)
	case rune:
		return "'" + EscapeChar(v) + "'"
	case string:
		return `"` + EscapeString(v) + `"`
	default:
		panic(fmt.Sprintf("prettyprinter: unknown literal %T", value))
	}
}

// FormatDecimal renders a decimal so it stays visually distinct from an
// integer: a fractional or exponent marker is always present.
func FormatDecimal(f *big.Float) string {
	s := f.Text('g', -1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// EscapeChar re-encodes a character for a character literal body.
func EscapeChar(r rune) string {
	switch r {
	case '\b':
		return `\b`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	default:
		return string(r)
	}
}

// EscapeString re-encodes a decoded string for a string literal body.
func EscapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

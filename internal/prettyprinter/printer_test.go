package prettyprinter

import (
	"math/big"
	"testing"

	"github.com/quill-lang/quill/internal/ast"
)

func TestPrintStatements(t *testing.T) {
	source := &ast.Source{Statements: []ast.Statement{
		&ast.Let{Name: "x", Value: &ast.Literal{Value: big.NewInt(1)}},
		&ast.Def{Name: "f", Parameters: []string{"a", "b"}, Body: []ast.Statement{
			&ast.Return{Value: &ast.Binary{
				Operator: "+",
				Left:     &ast.Variable{Name: "a"},
				Right:    &ast.Variable{Name: "b"},
			}},
		}},
		&ast.If{
			Condition: &ast.Variable{Name: "x"},
			Then:      []ast.Statement{&ast.Return{}},
			Else: []ast.Statement{&ast.Assignment{
				Target: &ast.Variable{Name: "x"},
				Value:  &ast.Literal{Value: big.NewInt(2)},
			}},
		},
	}}
	want := "LET x = 1; DEF f(a, b) DO RETURN a + b; END IF x DO RETURN; ELSE x = 2; END"
	if got := Print(source); got != want {
		t.Errorf("Print:\n got %q\nwant %q", got, want)
	}
}

func TestPrintExpressions(t *testing.T) {
	testCases := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{"nil", &ast.Literal{Value: nil}, "NIL"},
		{"booleans", &ast.Literal{Value: true}, "TRUE"},
		{"integer", &ast.Literal{Value: big.NewInt(-3)}, "-3"},
		{"decimal", &ast.Literal{Value: big.NewFloat(1.5)}, "1.5"},
		{"whole_decimal", &ast.Literal{Value: big.NewFloat(2)}, "2.0"},
		{"character", &ast.Literal{Value: '\n'}, `'\n'`},
		{"string", &ast.Literal{Value: "a\"b\\c"}, `"a\"b\\c"`},
		{"group", &ast.Group{Expression: &ast.Variable{Name: "x"}}, "(x)"},
		{"property", &ast.Property{Receiver: &ast.Variable{Name: "o"}, Name: "a"}, "o.a"},
		{"call_no_arguments", &ast.Function{Name: "f"}, "f()"},
		{"method", &ast.Method{
			Receiver:  &ast.Variable{Name: "o"},
			Name:      "f",
			Arguments: []ast.Expression{&ast.Literal{Value: big.NewInt(1)}},
		}, "o.f(1)"},
		{"object", &ast.ObjectExpr{
			Name: "p",
			Lets: []*ast.Let{{Name: "a", Value: &ast.Literal{Value: big.NewInt(1)}}},
			Defs: []*ast.Def{{Name: "f"}},
		}, "OBJECT p DO LET a = 1; DEF f() DO END END"},
		{"empty_object", &ast.ObjectExpr{}, "OBJECT DO END"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Print(tc.expr); got != tc.want {
				t.Errorf("Print = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	testCases := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{2, "2.0"},
		{0, "0.0"},
		{-3, "-3.0"},
	}
	for _, tc := range testCases {
		if got := FormatDecimal(big.NewFloat(tc.in)); got != tc.want {
			t.Errorf("FormatDecimal(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeRoundTripForms(t *testing.T) {
	if got := EscapeChar('\''); got != `\'` {
		t.Errorf("EscapeChar(') = %q", got)
	}
	if got := EscapeChar('a'); got != "a" {
		t.Errorf("EscapeChar(a) = %q", got)
	}
	if got := EscapeString("tab\there"); got != `tab\there` {
		t.Errorf("EscapeString = %q", got)
	}
}

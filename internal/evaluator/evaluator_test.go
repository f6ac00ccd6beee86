package evaluator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/evaluator"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/native"
	"github.com/quill-lang/quill/internal/parser"
)

// run evaluates input against a fresh native root scope and returns the
// result, everything the program wrote, and the evaluation error if any.
func run(t *testing.T, input string) (evaluator.RuntimeValue, string, error) {
	t.Helper()
	tokens, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", input, err)
	}
	source, err := parser.ParseSource(tokens)
	if err != nil {
		t.Fatalf("ParseSource(%q) failed: %v", input, err)
	}
	var out bytes.Buffer
	value, err := evaluator.New(native.NewScope(&out)).Evaluate(source)
	return value, out.String(), err
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   string // expected Inspect form of the result
		output string // expected console output, "" when none
	}{
		{"empty_program", "", "NIL", ""},
		{"let_result", "LET x = 5;", "5", ""},
		{"let_without_initializer", "LET x; x;", "NIL", ""},
		{"variable_lookup", "LET x = 5; x;", "5", ""},
		{"def_result", "DEF f() DO END", "Function(f)", ""},
		{"call", "DEF add(a, b) DO RETURN a + b; END add(2, 3);", "5", ""},
		{"bare_return", "DEF f() DO RETURN; END f();", "NIL", ""},
		{"fall_off_end", "DEF f() DO 1; END f();", "NIL", ""},
		{"return_through_if", "DEF f(a) DO IF a DO RETURN 1; END RETURN 2; END f(TRUE);", "1", ""},
		{"return_through_for",
			"DEF f() DO FOR i IN range(0, 10) DO RETURN i IF i == 3; END RETURN 99; END f();", "3", ""},
		{"recursion",
			"DEF fact(n) DO RETURN 1 IF n == 0; RETURN n * fact(n - 1); END fact(5);", "120", ""},
		{"if_then", "IF TRUE DO 1; ELSE 2; END", "1", ""},
		{"if_else", "IF FALSE DO 1; ELSE 2; END", "2", ""},
		{"if_empty_branch", "IF TRUE DO END", "NIL", ""},
		{"if_scope_shadowing", "LET x = 1; IF TRUE DO LET x = 2; END x;", "1", ""},
		{"if_scope_assignment", "LET x = 1; IF TRUE DO x = 2; END x;", "2", ""},
		{"for_loop", "FOR i IN range(0, 3) DO log(i); END", "NIL", "log: 0\nlog: 1\nlog: 2\n"},
		{"for_empty_range", "FOR i IN range(2, 2) DO log(i); END", "NIL", ""},
		{"for_over_list", "FOR x IN list('a', 'b') DO log(x); END", "NIL", "log: a\nlog: b\n"},
		{"assignment_result", "LET x = 1; x = 2;", "2", ""},
		{"integer_arithmetic", "1 + 2 * 3 - 4;", "3", ""},
		{"integer_division_truncates", "7 / 2;", "3", ""},
		{"negative_division_truncates", "0 - 7 / 2;", "-3", ""},
		{"decimal_arithmetic", "1.5 + 2.5;", "4.0", ""},
		{"grouping", "(1 + 2) * 3;", "9", ""},
		{"string_concat", `"a" + 1;`, `"a1"`, ""},
		{"string_concat_left_coercion", `1 + "a";`, `"1a"`, ""},
		{"char_string_concat", `'a' + "b";`, `"ab"`, ""},
		{"equality_integers", "1 == 1;", "TRUE", ""},
		{"equality_cross_kind", "1 == 1.0;", "FALSE", ""},
		{"equality_lists", "list(1, 2) == list(1, 2);", "TRUE", ""},
		{"inequality", "1 != 2;", "TRUE", ""},
		{"comparison_integers", "1 < 2;", "TRUE", ""},
		{"comparison_strings", `"a" < "b";`, "TRUE", ""},
		{"comparison_characters", "'b' >= 'a';", "TRUE", ""},
		{"and_short_circuit", "FALSE AND undefined;", "FALSE", ""},
		{"or_short_circuit", "TRUE OR undefined;", "TRUE", ""},
		{"logical_chain", "TRUE AND FALSE OR TRUE;", "TRUE", ""},
		{"closure_captures_definition_scope",
			"LET x = 1; DEF f() DO RETURN x; END DEF g() DO LET x = 2; RETURN f(); END g();", "1", ""},
		{"nested_closure",
			"DEF outer(a) DO DEF inner(b) DO RETURN a + b; END RETURN inner(10); END outer(1);", "11", ""},
		{"object_anonymous", "OBJECT DO END;", "Object", ""},
		{"object_named", "OBJECT p DO END;", "Object(p)", ""},
		{"object_property", "LET o = OBJECT DO LET a = 1; END; o.a;", "1", ""},
		{"object_named_binds_enclosing", "OBJECT p DO LET x = 1; END; p.x;", "1", ""},
		{"object_let_initializer_uses_enclosing_scope",
			"LET a = 1; LET o = OBJECT DO LET b = a + 1; END; o.b;", "2", ""},
		{"object_method_sees_siblings",
			"LET o = OBJECT DO LET a = 1; DEF get(self) DO RETURN self.a; END END; o.get();", "1", ""},
		{"object_methods_see_each_other",
			"LET o = OBJECT DO DEF f(self) DO RETURN 1; END DEF g(self) DO RETURN self.f() + 1; END END; o.g();",
			"2", ""},
		{"property_assignment_creates", "LET o = OBJECT DO END; o.a = 1; o.a;", "1", ""},
		{"property_assignment_overwrites", "LET o = OBJECT DO LET a = 1; END; o.a = 2; o.a;", "2", ""},
		{"fixture_variable", "variable;", `"variable"`, ""},
		{"fixture_function_collects_arguments", "function(1, 2);", "[1, 2]", ""},
		{"fixture_method_strips_receiver", "object.method(1, 2);", "[1, 2]", ""},
		{"fixture_own_property", "object.property;", `"property"`, ""},
		{"fixture_inherited_property", "object.inherited_property;", `"inherited_property"`, ""},
		{"fixture_inherited_method", "object.inherited_method(1);", "[1]", ""},
		{"print_string_raw", `print("hi");`, "NIL", "hi\n"},
		{"debug_string_quoted", `debug("hi");`, "NIL", "\"hi\"\n"},
		{"print_list", `print(list("a", 'b', 1));`, "NIL", "[a, b, 1]\n"},
		{"debug_list", `debug(list("a", 'b', 1));`, "NIL", "[\"a\", 'b', 1]\n"},
		{"log_returns_value", "LET x = log(5); x;", "5", "log: 5\n"},
		{"arguments_left_to_right", "function(log(1), log(2));", "[1, 2]", "log: 1\nlog: 2\n"},
		{"empty_range", "range(0, 0);", "[]", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, output, err := run(t, tc.input)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tc.input, err)
			}
			if got := value.Inspect(); got != tc.want {
				t.Errorf("Evaluate(%q) = %s, want %s", tc.input, got, tc.want)
			}
			if output != tc.output {
				t.Errorf("Evaluate(%q) output = %q, want %q", tc.input, output, tc.output)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		code  string
	}{
		{"duplicate_let", "LET x = 1; LET x = 2;", diagnostics.ErrE001},
		{"duplicate_def", "DEF f() DO END DEF f() DO END", diagnostics.ErrE001},
		{"duplicate_parameter", "DEF f(a, a) DO END f(1, 2);", diagnostics.ErrE001},
		{"duplicate_object_member", "OBJECT DO LET a = 1; DEF a() DO END END;", diagnostics.ErrE001},
		{"named_object_collides", "LET p = 1; OBJECT p DO END;", diagnostics.ErrE001},
		{"undefined_variable", "x;", diagnostics.ErrE002},
		{"undefined_function", "f();", diagnostics.ErrE002},
		{"assignment_to_undefined", "y = 1;", diagnostics.ErrE002},
		{"closure_ignores_call_site",
			"DEF f() DO RETURN x; END DEF g() DO LET x = 1; RETURN f(); END g();", diagnostics.ErrE002},
		{"undefined_property", "LET o = OBJECT DO END; o.a;", diagnostics.ErrE003},
		{"undefined_method", "LET o = OBJECT DO END; o.f();", diagnostics.ErrE003},
		{"too_few_arguments", "DEF add(a, b) DO RETURN a + b; END add(2);", diagnostics.ErrE004},
		{"too_many_arguments", "DEF f() DO END f(1);", diagnostics.ErrE004},
		{"native_arity", "print();", diagnostics.ErrE004},
		{"if_condition_not_boolean", "IF 1 DO END", diagnostics.ErrE005},
		{"logical_operand_not_boolean", "1 AND TRUE;", diagnostics.ErrE005},
		{"for_iterable_not_list", "FOR i IN 1 DO END", diagnostics.ErrE005},
		{"mixed_arithmetic", "1 + 1.0;", diagnostics.ErrE005},
		{"integer_division_by_zero", "1 / 0;", diagnostics.ErrE005},
		{"decimal_division_by_zero", "1.0 / 0.0;", diagnostics.ErrE005},
		{"incomparable_operands", "1 < 'a';", diagnostics.ErrE005},
		{"call_non_function", "variable();", diagnostics.ErrE005},
		{"property_on_non_object", "variable.x;", diagnostics.ErrE005},
		{"range_start_after_end", "range(2, 1);", diagnostics.ErrE005},
		{"range_non_integer", "range(0, 1.5);", diagnostics.ErrE005},
		{"return_at_top_level", "RETURN 1;", diagnostics.ErrE006},
		{"return_in_for_at_top_level", "FOR i IN range(0, 1) DO RETURN; END", diagnostics.ErrE006},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.input)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded, want error %s", tc.input, tc.code)
			}
			if got := diagnostics.Code(err); got != tc.code {
				t.Errorf("Evaluate(%q) error code = %s, want %s (%v)", tc.input, got, tc.code, err)
			}
		})
	}
}

// TestPersistentScope mirrors the REPL: one evaluator, several programs,
// state carried across them.
func TestPersistentScope(t *testing.T) {
	var out bytes.Buffer
	e := evaluator.New(native.NewScope(&out))

	for _, line := range []string{"LET x = 1;", "DEF inc() DO x = x + 1; RETURN x; END"} {
		tokens, err := lexer.Lex(line)
		if err != nil {
			t.Fatal(err)
		}
		source, err := parser.ParseSource(tokens)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := e.Evaluate(source); err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", line, err)
		}
	}

	tokens, err := lexer.Lex("inc(); inc();")
	if err != nil {
		t.Fatal(err)
	}
	source, err := parser.ParseSource(tokens)
	if err != nil {
		t.Fatal(err)
	}
	value, err := e.Evaluate(source)
	if err != nil {
		t.Fatal(err)
	}
	if got := value.Inspect(); got != "3" {
		t.Errorf("after two increments got %s, want 3", got)
	}
	if got, ok := e.Scope().Resolve("x", false); !ok || got.Inspect() != "3" {
		t.Errorf("scope binding x = %v (%t), want 3", got, ok)
	}
}

// Error messages carry the offending source fragment.
func TestErrorMessageContext(t *testing.T) {
	_, _, err := run(t, "LET x = 1; LET x = 2;")
	if err == nil {
		t.Fatal("expected duplicate definition error")
	}
	if !strings.Contains(err.Error(), "x") {
		t.Errorf("error %q does not mention the binding name", err)
	}
}

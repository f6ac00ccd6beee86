package evaluator

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/prettyprinter"
)

// RuntimeValue is the closed set of values the evaluator produces and
// consumes: Primitive, Function and ObjectValue. Inspect is the raw debug
// form (the `debug` native prints it); Print is the user-facing form.
type RuntimeValue interface {
	runtimeValue()
	Inspect() string
	Print() string
}

// Primitive wraps nil, bool, *big.Int, *big.Float, rune, string, or an
// ordered []RuntimeValue list.
type Primitive struct {
	Value interface{}
}

func (p *Primitive) runtimeValue() {}

func (p *Primitive) Inspect() string {
	switch v := p.Value.(type) {
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
		return prettyprinter.FormatDecimal(v)
	case rune:
		return "'" + prettyprinter.EscapeChar(v) + "'"
	case string:
		return `"` + prettyprinter.EscapeString(v) + `"`
	case []RuntimeValue:
		return formatList(v, RuntimeValue.Inspect)
	default:
		panic(fmt.Sprintf("evaluator: unknown primitive %T", p.Value))
	}
}

func (p *Primitive) Print() string {
	switch v := p.Value.(type) {
	case rune:
		return string(v)
	case string:
		return v
	case []RuntimeValue:
		return formatList(v, RuntimeValue.Print)
	default:
		return p.Inspect()
	}
}

func formatList(values []RuntimeValue, format func(RuntimeValue) string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = format(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NativeFn is a registry-backed function body. Natives validate their own
// arity and argument types.
type NativeFn func(arguments []RuntimeValue) (RuntimeValue, error)

// Function is a callable value: either native (Native set) or user-defined
// (Parameters/Body/Closure set). A user function's Closure is the scope
// active at its definition site; calls open a child of it, never of the
// call site.
type Function struct {
	Name   string
	Native NativeFn

	Parameters []string
	Body       []ast.Statement
	Closure    *Scope
}

func (f *Function) runtimeValue() {}

func (f *Function) Inspect() string {
	return fmt.Sprintf("Function(%s)", f.Name)
}

func (f *Function) Print() string {
	return "<fn " + f.Name + ">"
}

// ObjectValue is a named or anonymous object. Members live in Scope, which
// has no parent: property resolution never falls back to the lexical
// chain, only to the Proto chain.
type ObjectValue struct {
	Name  string // "" when anonymous
	Scope *Scope
	Proto *ObjectValue
}

func (o *ObjectValue) runtimeValue() {}

func (o *ObjectValue) Inspect() string {
	if o.Name == "" {
		return "Object"
	}
	return fmt.Sprintf("Object(%s)", o.Name)
}

func (o *ObjectValue) Print() string {
	if o.Name == "" {
		return "<object>"
	}
	return "<object " + o.Name + ">"
}

// Lookup finds a property in the object's own scope, then iteratively
// along the prototype chain. Chains never contain cycles by construction.
func (o *ObjectValue) Lookup(name string) (RuntimeValue, bool) {
	for obj := o; obj != nil; obj = obj.Proto {
		if value, ok := obj.Scope.Resolve(name, true); ok {
			return value, true
		}
	}
	return nil, false
}

// returnSignal carries a RETURN value up through statement execution.
// Only the nearest function-call boundary unwraps it; If and For block
// boundaries pass it through untouched. It is never user-visible.
type returnSignal struct {
	value RuntimeValue
}

func (r *returnSignal) runtimeValue()   {}
func (r *returnSignal) Inspect() string { return "return(" + r.value.Inspect() + ")" }
func (r *returnSignal) Print() string   { return r.Inspect() }

// NilValue is the canonical nil primitive.
func NilValue() RuntimeValue {
	return &Primitive{Value: nil}
}

// Equal implements structural equality for == and !=. Primitives compare
// by kind and value, lists element-wise; functions and objects compare by
// identity.
func Equal(a, b RuntimeValue) bool {
	pa, aok := a.(*Primitive)
	pb, bok := b.(*Primitive)
	if !aok || !bok {
		return a == b
	}
	switch va := pa.Value.(type) {
	case nil:
		return pb.Value == nil
	case bool:
		vb, ok := pb.Value.(bool)
		return ok && va == vb
	case *big.Int:
		vb, ok := pb.Value.(*big.Int)
		return ok && va.Cmp(vb) == 0
	case *big.Float:
		vb, ok := pb.Value.(*big.Float)
		return ok && va.Cmp(vb) == 0
	case rune:
		vb, ok := pb.Value.(rune)
		return ok && va == vb
	case string:
		vb, ok := pb.Value.(string)
		return ok && va == vb
	case []RuntimeValue:
		vb, ok := pb.Value.([]RuntimeValue)
		if !ok || len(va) != len(vb) {
			return false
		}
		for i := range va {
			if !Equal(va[i], vb[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

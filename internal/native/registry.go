// Package native is the registry of native functions and demo fixtures the
// evaluator's root scope is seeded with. The evaluator has no knowledge of
// what any native does; it only calls Function values. Natives validate
// their own arity and argument types.
package native

import (
	"fmt"
	"io"
	"math/big"

	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/evaluator"
)

// NewScope builds a fresh root scope seeded with the native functions and
// the fixtures used by the object/prototype demos. All console output goes
// to out.
func NewScope(out io.Writer) *evaluator.Scope {
	scope := evaluator.NewScope(nil)
	scope.Define(config.DebugFuncName, nativeFn(config.DebugFuncName, debug(out)))
	scope.Define(config.PrintFuncName, nativeFn(config.PrintFuncName, print(out)))
	scope.Define(config.LogFuncName, nativeFn(config.LogFuncName, log(out)))
	scope.Define(config.ListFuncName, nativeFn(config.ListFuncName, list))
	scope.Define(config.RangeFuncName, nativeFn(config.RangeFuncName, rangeFn))

	// Fixtures for exercising variables, functions, objects and the
	// prototype chain.
	scope.Define("variable", &evaluator.Primitive{Value: "variable"})
	scope.Define("function", nativeFn("function", function))

	prototype := &evaluator.ObjectValue{Name: "Prototype", Scope: evaluator.NewScope(nil)}
	prototype.Scope.Define("inherited_property", &evaluator.Primitive{Value: "inherited_property"})
	prototype.Scope.Define("inherited_method", nativeFn("inherited_method", method))

	object := &evaluator.ObjectValue{Name: "Object", Scope: evaluator.NewScope(nil), Proto: prototype}
	object.Scope.Define("property", &evaluator.Primitive{Value: "property"})
	object.Scope.Define("method", nativeFn("method", method))
	scope.Define("object", object)

	return scope
}

func nativeFn(name string, fn evaluator.NativeFn) *evaluator.Function {
	return &evaluator.Function{Name: name, Native: fn}
}

func arityError(name string, want, got int) error {
	return diagnostics.NewEvalError(diagnostics.ErrE004, "",
		"%s expects %d arguments, got %d", name, want, got)
}

// debug prints the raw Inspect form.
func debug(out io.Writer) evaluator.NativeFn {
	return func(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
		if len(arguments) != 1 {
			return nil, arityError(config.DebugFuncName, 1, len(arguments))
		}
		fmt.Fprintln(out, arguments[0].Inspect())
		return evaluator.NilValue(), nil
	}
}

// print prints the formatted display form.
func print(out io.Writer) evaluator.NativeFn {
	return func(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
		if len(arguments) != 1 {
			return nil, arityError(config.PrintFuncName, 1, len(arguments))
		}
		fmt.Fprintln(out, arguments[0].Print())
		return evaluator.NilValue(), nil
	}
}

// log prints the formatted value with a "log: " prefix and returns it, so
// it can be threaded into larger expressions.
func log(out io.Writer) evaluator.NativeFn {
	return func(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
		if len(arguments) != 1 {
			return nil, arityError(config.LogFuncName, 1, len(arguments))
		}
		fmt.Fprintln(out, "log: "+arguments[0].Print())
		return arguments[0], nil
	}
}

// list returns a list containing all arguments.
func list(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
	return &evaluator.Primitive{Value: arguments}, nil
}

// rangeFn takes two integers (start, end) and returns the list of integers
// in [start, end).
func rangeFn(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
	if len(arguments) != 2 {
		return nil, arityError(config.RangeFuncName, 2, len(arguments))
	}
	start, err := requireInteger(config.RangeFuncName, arguments[0])
	if err != nil {
		return nil, err
	}
	end, err := requireInteger(config.RangeFuncName, arguments[1])
	if err != nil {
		return nil, err
	}
	if start.Cmp(end) > 0 {
		return nil, diagnostics.NewEvalError(diagnostics.ErrE005, "",
			"%s: start %s is greater than end %s", config.RangeFuncName, start, end)
	}
	var elements []evaluator.RuntimeValue
	for i := new(big.Int).Set(start); i.Cmp(end) < 0; i.Add(i, big.NewInt(1)) {
		elements = append(elements, &evaluator.Primitive{Value: new(big.Int).Set(i)})
	}
	return &evaluator.Primitive{Value: elements}, nil
}

// function returns a list of all its arguments.
func function(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
	return &evaluator.Primitive{Value: arguments}, nil
}

// method returns a list of its arguments minus the prepended receiver.
// Compare with function: the difference is exactly the method-call
// convention.
func method(arguments []evaluator.RuntimeValue) (evaluator.RuntimeValue, error) {
	if len(arguments) < 1 {
		return nil, arityError("method", 1, len(arguments))
	}
	return &evaluator.Primitive{Value: arguments[1:]}, nil
}

func requireInteger(name string, value evaluator.RuntimeValue) (*big.Int, error) {
	if p, ok := value.(*evaluator.Primitive); ok {
		if i, ok := p.Value.(*big.Int); ok {
			return i, nil
		}
	}
	return nil, diagnostics.NewEvalError(diagnostics.ErrE005, "",
		"%s expects integer arguments, got %s", name, value.Inspect())
}

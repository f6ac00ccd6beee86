// Package evaluator walks the AST against a scope chain, producing
// runtime values. One Evaluator carries one mutable current-scope pointer,
// updated as execution enters and exits blocks. Evaluation is
// single-threaded and synchronous; recursion is bounded only by the host
// call stack.
package evaluator

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/prettyprinter"
)

type Evaluator struct {
	scope *Scope
}

// New creates an evaluator rooted at scope, typically the native
// registry's pre-seeded top scope.
func New(scope *Scope) *Evaluator {
	return &Evaluator{scope: scope}
}

// Scope returns the current scope. After evaluating a Source it is the top
// scope again, holding whatever the program defined (the REPL relies on
// this to keep state across lines).
func (e *Evaluator) Scope() *Scope {
	return e.scope
}

// Evaluate walks any node. For a *ast.Source the result is the last
// statement's value, or NIL for an empty program; a RETURN reaching the
// top level is an error.
func (e *Evaluator) Evaluate(node ast.Node) (RuntimeValue, error) {
	switch n := node.(type) {
	case *ast.Source:
		return e.evalSource(n)
	case ast.Statement:
		return e.evalStatement(n)
	case ast.Expression:
		return e.evalExpression(n)
	default:
		return nil, e.errorf(diagnostics.ErrE005, node, "cannot evaluate node")
	}
}

func (e *Evaluator) evalSource(source *ast.Source) (RuntimeValue, error) {
	result := NilValue()
	for _, stmt := range source.Statements {
		value, err := e.evalStatement(stmt)
		if err != nil {
			return nil, err
		}
		if _, ok := value.(*returnSignal); ok {
			return nil, e.errorf(diagnostics.ErrE006, stmt, "RETURN outside of a function")
		}
		result = value
	}
	return result, nil
}

// evalStatements executes a block in the given scope and restores the
// previous scope afterwards. A return signal stops the block and is passed
// through to the caller; otherwise the result is the last statement's
// value, or NIL for an empty block.
func (e *Evaluator) evalStatements(statements []ast.Statement, scope *Scope) (RuntimeValue, error) {
	previous := e.scope
	e.scope = scope
	defer func() { e.scope = previous }()

	result := NilValue()
	for _, stmt := range statements {
		value, err := e.evalStatement(stmt)
		if err != nil {
			return nil, err
		}
		if _, ok := value.(*returnSignal); ok {
			return value, nil
		}
		result = value
	}
	return result, nil
}

// callFunction invokes a native or user function. For user functions the
// body runs in a child of the *captured* closure scope, never of the call
// site; a return signal supplies the result, falling off the end yields
// NIL.
func (e *Evaluator) callFunction(fn *Function, arguments []RuntimeValue, node ast.Node) (RuntimeValue, error) {
	if fn.Native != nil {
		return fn.Native(arguments)
	}
	if len(arguments) != len(fn.Parameters) {
		return nil, e.errorf(diagnostics.ErrE004, node,
			"%s expects %d arguments, got %d", fn.Name, len(fn.Parameters), len(arguments))
	}
	scope := NewScope(fn.Closure)
	for i, parameter := range fn.Parameters {
		if !scope.Define(parameter, arguments[i]) {
			return nil, e.errorf(diagnostics.ErrE001, node, "duplicate parameter %s", parameter)
		}
	}
	value, err := e.evalStatements(fn.Body, scope)
	if err != nil {
		return nil, err
	}
	if signal, ok := value.(*returnSignal); ok {
		return signal.value, nil
	}
	return NilValue(), nil
}

func (e *Evaluator) errorf(code string, node ast.Node, format string, args ...interface{}) error {
	rendered := ""
	if node != nil {
		rendered = prettyprinter.Print(node)
	}
	return diagnostics.NewEvalError(code, rendered, format, args...)
}

func (e *Evaluator) requireBoolean(value RuntimeValue, node ast.Node) (bool, error) {
	if p, ok := value.(*Primitive); ok {
		if b, ok := p.Value.(bool); ok {
			return b, nil
		}
	}
	return false, e.errorf(diagnostics.ErrE005, node, "expected a boolean, got %s", value.Inspect())
}

func (e *Evaluator) requireObject(value RuntimeValue, node ast.Node) (*ObjectValue, error) {
	if obj, ok := value.(*ObjectValue); ok {
		return obj, nil
	}
	return nil, e.errorf(diagnostics.ErrE005, node, "expected an object, got %s", value.Inspect())
}

func (e *Evaluator) requireFunction(value RuntimeValue, name string, node ast.Node) (*Function, error) {
	if fn, ok := value.(*Function); ok {
		return fn, nil
	}
	return nil, e.errorf(diagnostics.ErrE005, node, "%s is not a function", name)
}

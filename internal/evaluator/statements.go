package evaluator

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
)

func (e *Evaluator) evalStatement(stmt ast.Statement) (RuntimeValue, error) {
	switch s := stmt.(type) {
	case *ast.Let:
		return e.evalLet(s)
	case *ast.Def:
		return e.evalDef(s)
	case *ast.If:
		return e.evalIf(s)
	case *ast.For:
		return e.evalFor(s)
	case *ast.Return:
		return e.evalReturn(s)
	case *ast.ExpressionStatement:
		return e.evalExpression(s.Expression)
	case *ast.Assignment:
		return e.evalAssignment(s)
	default:
		return nil, e.errorf(diagnostics.ErrE005, stmt, "cannot evaluate statement")
	}
}

func (e *Evaluator) evalLet(stmt *ast.Let) (RuntimeValue, error) {
	value := NilValue()
	if stmt.Value != nil {
		v, err := e.evalExpression(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	if !e.scope.Define(stmt.Name, value) {
		return nil, e.errorf(diagnostics.ErrE001, stmt, "variable %s is already defined", stmt.Name)
	}
	return value, nil
}

func (e *Evaluator) evalDef(stmt *ast.Def) (RuntimeValue, error) {
	fn := &Function{
		Name:       stmt.Name,
		Parameters: stmt.Parameters,
		Body:       stmt.Body,
		Closure:    e.scope,
	}
	if !e.scope.Define(stmt.Name, fn) {
		return nil, e.errorf(diagnostics.ErrE001, stmt, "function %s is already defined", stmt.Name)
	}
	return fn, nil
}

func (e *Evaluator) evalIf(stmt *ast.If) (RuntimeValue, error) {
	value, err := e.evalExpression(stmt.Condition)
	if err != nil {
		return nil, err
	}
	condition, err := e.requireBoolean(value, stmt.Condition)
	if err != nil {
		return nil, err
	}
	branch := stmt.Then
	if !condition {
		branch = stmt.Else
	}
	return e.evalStatements(branch, NewScope(e.scope))
}

func (e *Evaluator) evalFor(stmt *ast.For) (RuntimeValue, error) {
	value, err := e.evalExpression(stmt.Iterable)
	if err != nil {
		return nil, err
	}
	primitive, ok := value.(*Primitive)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE005, stmt.Iterable, "expected a list, got %s", value.Inspect())
	}
	elements, ok := primitive.Value.([]RuntimeValue)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE005, stmt.Iterable, "expected a list, got %s", value.Inspect())
	}
	for _, element := range elements {
		scope := NewScope(e.scope)
		scope.Define(stmt.Name, element)
		result, err := e.evalStatements(stmt.Body, scope)
		if err != nil {
			return nil, err
		}
		// RETURN inside the body propagates out of the loop to the
		// enclosing function call.
		if _, ok := result.(*returnSignal); ok {
			return result, nil
		}
	}
	return NilValue(), nil
}

func (e *Evaluator) evalReturn(stmt *ast.Return) (RuntimeValue, error) {
	value := NilValue()
	if stmt.Value != nil {
		v, err := e.evalExpression(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return &returnSignal{value: value}, nil
}

func (e *Evaluator) evalAssignment(stmt *ast.Assignment) (RuntimeValue, error) {
	value, err := e.evalExpression(stmt.Value)
	if err != nil {
		return nil, err
	}
	switch target := stmt.Target.(type) {
	case *ast.Variable:
		if !e.scope.Assign(target.Name, value) {
			return nil, e.errorf(diagnostics.ErrE002, stmt, "undefined variable %s", target.Name)
		}
	case *ast.Property:
		receiver, err := e.evalExpression(target.Receiver)
		if err != nil {
			return nil, err
		}
		object, err := e.requireObject(receiver, target.Receiver)
		if err != nil {
			return nil, err
		}
		// Property writes create-or-overwrite in the object's own scope;
		// the duplicate-binding rule does not apply here.
		object.Scope.Put(target.Name, value)
	default:
		// unreachable: the parser rejects other target shapes
		return nil, e.errorf(diagnostics.ErrE005, stmt, "invalid assignment target")
	}
	return value, nil
}

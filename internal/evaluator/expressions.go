package evaluator

import (
	"math/big"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
)

func (e *Evaluator) evalExpression(expr ast.Expression) (RuntimeValue, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return &Primitive{Value: x.Value}, nil
	case *ast.Group:
		return e.evalExpression(x.Expression)
	case *ast.Binary:
		return e.evalBinary(x)
	case *ast.Variable:
		return e.evalVariable(x)
	case *ast.Property:
		return e.evalProperty(x)
	case *ast.Function:
		return e.evalCall(x)
	case *ast.Method:
		return e.evalMethod(x)
	case *ast.ObjectExpr:
		return e.evalObject(x)
	default:
		return nil, e.errorf(diagnostics.ErrE005, expr, "cannot evaluate expression")
	}
}

func (e *Evaluator) evalVariable(expr *ast.Variable) (RuntimeValue, error) {
	value, ok := e.scope.Resolve(expr.Name, false)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE002, expr, "undefined variable %s", expr.Name)
	}
	return value, nil
}

func (e *Evaluator) evalProperty(expr *ast.Property) (RuntimeValue, error) {
	receiver, err := e.evalExpression(expr.Receiver)
	if err != nil {
		return nil, err
	}
	object, err := e.requireObject(receiver, expr.Receiver)
	if err != nil {
		return nil, err
	}
	value, ok := object.Lookup(expr.Name)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE003, expr, "undefined property %s", expr.Name)
	}
	return value, nil
}

// evalCall resolves the callee name through ordinary variable lookup and
// invokes it with the evaluated arguments.
func (e *Evaluator) evalCall(expr *ast.Function) (RuntimeValue, error) {
	value, ok := e.scope.Resolve(expr.Name, false)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE002, expr, "undefined function %s", expr.Name)
	}
	fn, err := e.requireFunction(value, expr.Name, expr)
	if err != nil {
		return nil, err
	}
	arguments, err := e.evalArguments(expr.Arguments)
	if err != nil {
		return nil, err
	}
	return e.callFunction(fn, arguments, expr)
}

// evalMethod resolves the name through property lookup on the receiver and
// invokes it with the receiver prepended to the arguments. The prepended
// receiver is what distinguishes a method body's argument list from a
// plain function's; the asymmetry is deliberate and preserved.
func (e *Evaluator) evalMethod(expr *ast.Method) (RuntimeValue, error) {
	receiver, err := e.evalExpression(expr.Receiver)
	if err != nil {
		return nil, err
	}
	object, err := e.requireObject(receiver, expr.Receiver)
	if err != nil {
		return nil, err
	}
	value, ok := object.Lookup(expr.Name)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE003, expr, "undefined method %s", expr.Name)
	}
	fn, err := e.requireFunction(value, expr.Name, expr)
	if err != nil {
		return nil, err
	}
	arguments, err := e.evalArguments(expr.Arguments)
	if err != nil {
		return nil, err
	}
	return e.callFunction(fn, append([]RuntimeValue{receiver}, arguments...), expr)
}

func (e *Evaluator) evalArguments(exprs []ast.Expression) ([]RuntimeValue, error) {
	arguments := make([]RuntimeValue, 0, len(exprs))
	for _, expr := range exprs {
		value, err := e.evalExpression(expr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}
	return arguments, nil
}

// evalObject builds an object with a fresh, parentless own scope. LET
// members evaluate first (initializers run in the enclosing lexical
// scope), then DEF members, whose closures capture the object's own scope
// so methods see sibling members and each other. A named object is also
// defined under its name in the enclosing scope.
func (e *Evaluator) evalObject(expr *ast.ObjectExpr) (RuntimeValue, error) {
	object := &ObjectValue{Name: expr.Name, Scope: NewScope(nil)}
	for _, let := range expr.Lets {
		value := NilValue()
		if let.Value != nil {
			v, err := e.evalExpression(let.Value)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if !object.Scope.Define(let.Name, value) {
			return nil, e.errorf(diagnostics.ErrE001, let, "property %s is already defined", let.Name)
		}
	}
	for _, def := range expr.Defs {
		fn := &Function{
			Name:       def.Name,
			Parameters: def.Parameters,
			Body:       def.Body,
			Closure:    object.Scope,
		}
		if !object.Scope.Define(def.Name, fn) {
			return nil, e.errorf(diagnostics.ErrE001, def, "method %s is already defined", def.Name)
		}
	}
	if expr.Name != "" {
		if !e.scope.Define(expr.Name, object) {
			return nil, e.errorf(diagnostics.ErrE001, expr, "variable %s is already defined", expr.Name)
		}
	}
	return object, nil
}

func (e *Evaluator) evalBinary(expr *ast.Binary) (RuntimeValue, error) {
	switch expr.Operator {
	case "AND", "OR":
		return e.evalLogical(expr)
	}
	left, err := e.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "==":
		return &Primitive{Value: Equal(left, right)}, nil
	case "!=":
		return &Primitive{Value: !Equal(left, right)}, nil
	case "+":
		return e.evalAdd(left, right, expr)
	case "-", "*", "/":
		return e.evalArithmetic(expr.Operator, left, right, expr)
	case "<", "<=", ">", ">=":
		return e.evalComparison(expr.Operator, left, right, expr)
	default:
		return nil, e.errorf(diagnostics.ErrE005, expr, "unknown operator %s", expr.Operator)
	}
}

// evalLogical short-circuits: the right operand is evaluated only when the
// left does not decide the result. Both operands must be booleans.
func (e *Evaluator) evalLogical(expr *ast.Binary) (RuntimeValue, error) {
	value, err := e.evalExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	left, err := e.requireBoolean(value, expr.Left)
	if err != nil {
		return nil, err
	}
	if expr.Operator == "AND" && !left {
		return &Primitive{Value: false}, nil
	}
	if expr.Operator == "OR" && left {
		return &Primitive{Value: true}, nil
	}
	value, err = e.evalExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	right, err := e.requireBoolean(value, expr.Right)
	if err != nil {
		return nil, err
	}
	return &Primitive{Value: right}, nil
}

// evalAdd handles numeric addition plus the string-concatenation overload:
// whenever either operand is a string, the other is coerced to its display
// form.
func (e *Evaluator) evalAdd(left, right RuntimeValue, node ast.Node) (RuntimeValue, error) {
	if isString(left) || isString(right) {
		return &Primitive{Value: left.Print() + right.Print()}, nil
	}
	return e.evalArithmetic("+", left, right, node)
}

func (e *Evaluator) evalArithmetic(operator string, left, right RuntimeValue, node ast.Node) (RuntimeValue, error) {
	if li, ri, ok := integerOperands(left, right); ok {
		if operator == "/" && ri.Sign() == 0 {
			return nil, e.errorf(diagnostics.ErrE005, node, "division by zero")
		}
		result := new(big.Int)
		switch operator {
		case "+":
			result.Add(li, ri)
		case "-":
			result.Sub(li, ri)
		case "*":
			result.Mul(li, ri)
		case "/":
			result.Quo(li, ri)
		}
		return &Primitive{Value: result}, nil
	}
	if lf, rf, ok := decimalOperands(left, right); ok {
		if operator == "/" && rf.Sign() == 0 {
			return nil, e.errorf(diagnostics.ErrE005, node, "division by zero")
		}
		result := new(big.Float).SetPrec(lf.Prec())
		switch operator {
		case "+":
			result.Add(lf, rf)
		case "-":
			result.Sub(lf, rf)
		case "*":
			result.Mul(lf, rf)
		case "/":
			result.Quo(lf, rf)
		}
		return &Primitive{Value: result}, nil
	}
	return nil, e.errorf(diagnostics.ErrE005, node,
		"operands of %s must both be integers or both be decimals, got %s and %s",
		operator, left.Inspect(), right.Inspect())
}

// evalComparison applies natural ordering over matching kinds: integer,
// decimal, string or character.
func (e *Evaluator) evalComparison(operator string, left, right RuntimeValue, node ast.Node) (RuntimeValue, error) {
	cmp, ok := compareValues(left, right)
	if !ok {
		return nil, e.errorf(diagnostics.ErrE005, node,
			"operands of %s are not comparable: %s and %s", operator, left.Inspect(), right.Inspect())
	}
	var result bool
	switch operator {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	}
	return &Primitive{Value: result}, nil
}

// compareValues orders two primitives of matching kind. ok is false for
// mismatched or unordered kinds.
func compareValues(left, right RuntimeValue) (int, bool) {
	if li, ri, ok := integerOperands(left, right); ok {
		return li.Cmp(ri), true
	}
	if lf, rf, ok := decimalOperands(left, right); ok {
		return lf.Cmp(rf), true
	}
	lv, lok := primitiveValue(left)
	rv, rok := primitiveValue(right)
	if !lok || !rok {
		return 0, false
	}
	switch l := lv.(type) {
	case string:
		if r, ok := rv.(string); ok {
			return compareOrdered(l, r), true
		}
	case rune:
		if r, ok := rv.(rune); ok {
			return compareOrdered(l, r), true
		}
	}
	return 0, false
}

func primitiveValue(value RuntimeValue) (interface{}, bool) {
	if p, ok := value.(*Primitive); ok {
		return p.Value, true
	}
	return nil, false
}

func isString(value RuntimeValue) bool {
	v, ok := primitiveValue(value)
	if !ok {
		return false
	}
	_, ok = v.(string)
	return ok
}

func integerOperands(left, right RuntimeValue) (*big.Int, *big.Int, bool) {
	lv, lok := primitiveValue(left)
	rv, rok := primitiveValue(right)
	if !lok || !rok {
		return nil, nil, false
	}
	li, lok := lv.(*big.Int)
	ri, rok := rv.(*big.Int)
	if !lok || !rok {
		return nil, nil, false
	}
	return li, ri, true
}

func decimalOperands(left, right RuntimeValue) (*big.Float, *big.Float, bool) {
	lv, lok := primitiveValue(left)
	rv, rok := primitiveValue(right)
	if !lok || !rok {
		return nil, nil, false
	}
	lf, lok := lv.(*big.Float)
	rf, rok := rv.(*big.Float)
	if !lok || !rok {
		return nil, nil, false
	}
	return lf, rf, true
}

func compareOrdered[T string | rune](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
)

// expr ::= logical
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogical()
}

// logical ::= comparison (('AND'|'OR') comparison)*
func (p *Parser) parseLogical() (ast.Expression, error) {
	expr, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.match("AND") || p.match("OR") {
		operator := p.get(-1).Literal
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Operator: operator, Left: expr, Right: right}
	}
	return expr, nil
}

// comparison ::= additive (('<'|'<='|'>'|'>='|'=='|'!=') additive)*
func (p *Parser) parseComparison() (ast.Expression, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek("<") || p.peek("<=") || p.peek(">") || p.peek(">=") || p.peek("==") || p.peek("!=") {
		operator := p.get(0).Literal
		p.match(operator)
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Operator: operator, Left: expr, Right: right}
	}
	return expr, nil
}

// additive ::= multiplicative (('+'|'-') multiplicative)*
func (p *Parser) parseAdditive() (ast.Expression, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.match("+") || p.match("-") {
		operator := p.get(-1).Literal
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Operator: operator, Left: expr, Right: right}
	}
	return expr, nil
}

// multiplicative ::= secondary (('*'|'/') secondary)*
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	expr, err := p.parseSecondary()
	if err != nil {
		return nil, err
	}
	for p.match("*") || p.match("/") {
		operator := p.get(-1).Literal
		right, err := p.parseSecondary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Operator: operator, Left: expr, Right: right}
	}
	return expr, nil
}

// secondary ::= primary ('.' identifier ('(' arguments ')')?)*
func (p *Parser) parseSecondary() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek(".") {
		expr, err = p.parsePropertyOrMethod(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) parsePropertyOrMethod(receiver ast.Expression) (ast.Expression, error) {
	p.match(".")
	if !p.peek(token.IDENTIFIER) {
		return nil, p.errorHere(diagnostics.ErrP001, "expected property name after '.'")
	}
	name := p.get(0).Literal
	p.match(token.IDENTIFIER)

	if p.match("(") {
		arguments, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.Method{Receiver: receiver, Name: name, Arguments: arguments}, nil
	}
	return &ast.Property{Receiver: receiver, Name: name}, nil
}

// primary ::= literal | '(' expr ')' | object_expr
//           | identifier ('(' arguments ')')?
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.peek(token.INTEGER), p.peek(token.DECIMAL), p.peek(token.CHARACTER), p.peek(token.STRING),
		p.peek("NIL"), p.peek("TRUE"), p.peek("FALSE"):
		return p.parseLiteral()
	case p.peek("("):
		return p.parseGroup()
	case p.peek("OBJECT"):
		return p.parseObject()
	case p.peek(token.IDENTIFIER):
		return p.parseVariableOrFunction()
	default:
		return nil, p.errorHere(diagnostics.ErrP001, "expected expression")
	}
}

// literal ::= 'NIL' | 'TRUE' | 'FALSE' | integer | decimal | character | string
func (p *Parser) parseLiteral() (ast.Expression, error) {
	switch {
	case p.match("NIL"):
		return &ast.Literal{Value: nil}, nil
	case p.match("TRUE"):
		return &ast.Literal{Value: true}, nil
	case p.match("FALSE"):
		return &ast.Literal{Value: false}, nil
	case p.match(token.INTEGER):
		return &ast.Literal{Value: newInteger(p.get(-1).Literal)}, nil
	case p.match(token.DECIMAL):
		return &ast.Literal{Value: newDecimal(p.get(-1).Literal)}, nil
	case p.match(token.CHARACTER):
		return &ast.Literal{Value: decodeCharacter(p.get(-1).Literal)}, nil
	default:
		p.match(token.STRING)
		return &ast.Literal{Value: decodeString(p.get(-1).Literal)}, nil
	}
}

// group ::= '(' expr ')'
func (p *Parser) parseGroup() (ast.Expression, error) {
	p.match("(")
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match(")") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ')'")
	}
	return &ast.Group{Expression: expr}, nil
}

// object_expr ::= 'OBJECT' identifier? 'DO' (let|def)* 'END'
// Lets and defs may interleave in source but are collected into separate
// ordered lists.
func (p *Parser) parseObject() (ast.Expression, error) {
	p.match("OBJECT")

	name := ""
	if p.peek(token.IDENTIFIER) && !p.peek("DO") {
		name = p.get(0).Literal
		p.match(token.IDENTIFIER)
	}
	if !p.match("DO") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected DO after OBJECT")
	}

	var lets []*ast.Let
	var defs []*ast.Def
	for !p.peek("END") {
		switch {
		case p.peek("LET"):
			stmt, err := p.parseLet()
			if err != nil {
				return nil, err
			}
			lets = append(lets, stmt.(*ast.Let))
		case p.peek("DEF"):
			stmt, err := p.parseDef()
			if err != nil {
				return nil, err
			}
			defs = append(defs, stmt.(*ast.Def))
		case !p.has(0):
			return nil, p.errorHere(diagnostics.ErrP002, "expected END before end of input")
		default:
			return nil, p.errorHere(diagnostics.ErrP001, "expected LET, DEF or END in object body")
		}
	}
	p.match("END")
	return &ast.ObjectExpr{Name: name, Lets: lets, Defs: defs}, nil
}

// variable_or_function ::= identifier ('(' arguments ')')?
// A name immediately followed by '(' is always a call.
func (p *Parser) parseVariableOrFunction() (ast.Expression, error) {
	p.match(token.IDENTIFIER)
	name := p.get(-1).Literal
	if p.match("(") {
		arguments, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		return &ast.Function{Name: name, Arguments: arguments}, nil
	}
	return &ast.Variable{Name: name}, nil
}

// arguments ::= (expr (',' expr)*)? ')'
// The opening '(' is already consumed. Trailing commas are rejected.
func (p *Parser) parseArguments() ([]ast.Expression, error) {
	var arguments []ast.Expression
	if !p.peek(")") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, expr)
		for p.match(",") {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, expr)
		}
	}
	if !p.match(")") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ')' after arguments")
	}
	return arguments, nil
}

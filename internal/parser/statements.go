package parser

import (
	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/token"
)

// statement ::= let | def | if | for | return | expr_or_assign
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.peek("LET"):
		return p.parseLet()
	case p.peek("DEF"):
		return p.parseDef()
	case p.peek("IF"):
		return p.parseIf()
	case p.peek("FOR"):
		return p.parseFor()
	case p.peek("RETURN"):
		return p.parseReturn()
	default:
		return p.parseExpressionOrAssignment()
	}
}

// let ::= 'LET' identifier ('=' expr)? ';'
func (p *Parser) parseLet() (ast.Statement, error) {
	p.match("LET")
	if !p.peek(token.IDENTIFIER) {
		return nil, p.errorHere(diagnostics.ErrP001, "expected identifier after LET")
	}
	name := p.get(0).Literal
	p.match(token.IDENTIFIER)

	var value ast.Expression
	if p.match("=") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	if !p.match(";") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ';' after LET statement")
	}
	return &ast.Let{Name: name, Value: value}, nil
}

// def ::= 'DEF' identifier '(' (identifier (',' identifier)*)? ')' 'DO' statement* 'END'
func (p *Parser) parseDef() (ast.Statement, error) {
	p.match("DEF")
	if !p.peek(token.IDENTIFIER) {
		return nil, p.errorHere(diagnostics.ErrP001, "expected function name after DEF")
	}
	name := p.get(0).Literal
	p.match(token.IDENTIFIER)

	if !p.match("(") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected '(' after function name")
	}
	var parameters []string
	if p.peek(token.IDENTIFIER) {
		parameters = append(parameters, p.get(0).Literal)
		p.match(token.IDENTIFIER)
		for p.match(",") {
			if !p.peek(token.IDENTIFIER) {
				return nil, p.errorHere(diagnostics.ErrP001, "expected parameter name after ','")
			}
			parameters = append(parameters, p.get(0).Literal)
			p.match(token.IDENTIFIER)
		}
	}
	if !p.match(")") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ')' after parameter list")
	}
	if !p.match("DO") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected DO after function header")
	}
	body, err := p.parseBlock("END")
	if err != nil {
		return nil, err
	}
	p.match("END")
	return &ast.Def{Name: name, Parameters: parameters, Body: body}, nil
}

// if ::= 'IF' expr 'DO' statement* ('ELSE' statement*)? 'END'
func (p *Parser) parseIf() (ast.Statement, error) {
	p.match("IF")
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match("DO") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected DO after IF condition")
	}
	then, err := p.parseBlock("END", "ELSE")
	if err != nil {
		return nil, err
	}
	var elses []ast.Statement
	if p.match("ELSE") {
		elses, err = p.parseBlock("END")
		if err != nil {
			return nil, err
		}
	}
	p.match("END")
	return &ast.If{Condition: condition, Then: then, Else: elses}, nil
}

// for ::= 'FOR' identifier 'IN' expr 'DO' statement* 'END'
func (p *Parser) parseFor() (ast.Statement, error) {
	p.match("FOR")
	if !p.peek(token.IDENTIFIER) {
		return nil, p.errorHere(diagnostics.ErrP001, "expected loop variable after FOR")
	}
	name := p.get(0).Literal
	p.match(token.IDENTIFIER)

	if !p.match("IN") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected IN after loop variable")
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.match("DO") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected DO after FOR iterable")
	}
	body, err := p.parseBlock("END")
	if err != nil {
		return nil, err
	}
	p.match("END")
	return &ast.For{Name: name, Iterable: iterable, Body: body}, nil
}

// return ::= 'RETURN' expr? ('IF' expr)? ';'
// The conditional forms desugar: RETURN v IF c; becomes IF c DO RETURN v; END
// so no standalone conditional-return node exists.
func (p *Parser) parseReturn() (ast.Statement, error) {
	p.match("RETURN")

	if p.match("IF") {
		condition, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(";") {
			return nil, p.errorHere(diagnostics.ErrP001, "expected ';' after RETURN IF condition")
		}
		return &ast.If{Condition: condition, Then: []ast.Statement{&ast.Return{}}}, nil
	}

	var value ast.Expression
	var condition ast.Expression
	if !p.peek(";") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
		if p.match("IF") {
			condition, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		}
	}
	if !p.match(";") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ';' after RETURN")
	}
	ret := &ast.Return{Value: value}
	if condition != nil {
		return &ast.If{Condition: condition, Then: []ast.Statement{ret}}, nil
	}
	return ret, nil
}

// expr_or_assign ::= expr ('=' expr)? ';'
// The left side must have parsed as a Variable or Property to become an
// assignment target; anything else followed by '=' is a parse error.
func (p *Parser) parseExpressionOrAssignment() (ast.Statement, error) {
	target, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.match("=") {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.match(";") {
			return nil, p.errorHere(diagnostics.ErrP001, "expected ';' after assignment")
		}
		switch target.(type) {
		case *ast.Variable, *ast.Property:
			return &ast.Assignment{Target: target, Value: value}, nil
		default:
			return nil, p.errorHere(diagnostics.ErrP003, "invalid assignment target")
		}
	}
	if !p.match(";") {
		return nil, p.errorHere(diagnostics.ErrP001, "expected ';' after expression")
	}
	return &ast.ExpressionStatement{Expression: target}, nil
}

// parseBlock parses statements until one of the closing keywords. It does
// not consume the closer.
func (p *Parser) parseBlock(closers ...string) ([]ast.Statement, error) {
	var statements []ast.Statement
	for {
		if !p.has(0) {
			return nil, p.errorHere(diagnostics.ErrP002, "expected %s before end of input", closers[0])
		}
		for _, closer := range closers {
			if p.peek(closer) {
				return statements, nil
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// Package ast defines the abstract syntax tree produced by the parser.
// The node set is closed: Statement and Expression are sealed via
// unexported marker methods so the evaluator's type switches can be
// checked for exhaustiveness against this package alone. Nodes are
// immutable once built.
package ast

// Node is the base interface for all AST nodes.
type Node interface {
	node()
}

// Statement is a Node occurring in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node occurring in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Source is the root node: an ordered list of top-level statements.
type Source struct {
	Statements []Statement
}

func (s *Source) node() {}

package ast

// Literal wraps a decoded literal value: nil, bool, *big.Int, *big.Float,
// rune or string. Escape sequences in character/string literals are already
// decoded by the parser.
type Literal struct {
	Value interface{}
}

func (l *Literal) node()           {}
func (l *Literal) expressionNode() {}

// Group is a parenthesized expression. It evaluates identically to its
// inner expression and exists only to record grouping.
type Group struct {
	Expression Expression
}

func (g *Group) node()           {}
func (g *Group) expressionNode() {}

// Binary applies an infix operator: + - * / < <= > >= == != AND OR.
type Binary struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (b *Binary) node()           {}
func (b *Binary) expressionNode() {}

// Variable reads a name from the lexical scope chain.
type Variable struct {
	Name string
}

func (v *Variable) node()           {}
func (v *Variable) expressionNode() {}

// Property reads a member from an object: receiver.name
type Property struct {
	Receiver Expression
	Name     string
}

func (p *Property) node()           {}
func (p *Property) expressionNode() {}

// Function is a call through a name: name(args...). A name immediately
// followed by '(' always parses as a call, never as a bare Variable.
type Function struct {
	Name      string
	Arguments []Expression
}

func (f *Function) node()           {}
func (f *Function) expressionNode() {}

// Method is a call through a property: receiver.name(args...). At runtime
// the receiver is prepended to the argument list.
type Method struct {
	Receiver  Expression
	Name      string
	Arguments []Expression
}

func (m *Method) node()           {}
func (m *Method) expressionNode() {}

// ObjectExpr constructs an object with LET members and DEF methods.
// OBJECT name? DO ... END
// The parser collects lets and defs into separate ordered lists even when
// they interleave in source.
type ObjectExpr struct {
	Name string // "" for anonymous objects
	Lets []*Let
	Defs []*Def
}

func (o *ObjectExpr) node()           {}
func (o *ObjectExpr) expressionNode() {}

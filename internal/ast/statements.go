package ast

// Let declares a variable in the current scope.
// LET name; or LET name = value;
type Let struct {
	Name  string
	Value Expression // nil when no initializer
}

func (l *Let) node()          {}
func (l *Let) statementNode() {}

// Def declares a function.
// DEF name(a, b) DO ... END
type Def struct {
	Name       string
	Parameters []string
	Body       []Statement
}

func (d *Def) node()          {}
func (d *Def) statementNode() {}

// If executes Then or Else depending on a boolean condition.
// IF cond DO ... ELSE ... END
type If struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
}

func (i *If) node()          {}
func (i *If) statementNode() {}

// For iterates a list, binding each element to Name in a fresh scope.
// FOR name IN iterable DO ... END
type For struct {
	Name     string
	Iterable Expression
	Body     []Statement
}

func (f *For) node()          {}
func (f *For) statementNode() {}

// Return exits the enclosing function with an optional value.
// RETURN; or RETURN value;
// The conditional form RETURN value IF cond; never reaches the AST: the
// parser desugars it into an If wrapping a Return.
type Return struct {
	Value Expression // nil for a bare RETURN
}

func (r *Return) node()          {}
func (r *Return) statementNode() {}

// ExpressionStatement evaluates an expression for its value/side effects.
type ExpressionStatement struct {
	Expression Expression
}

func (e *ExpressionStatement) node()          {}
func (e *ExpressionStatement) statementNode() {}

// Assignment writes Value into Target, which the parser guarantees is
// either a *Variable or a *Property.
type Assignment struct {
	Target Expression
	Value  Expression
}

func (a *Assignment) node()          {}
func (a *Assignment) statementNode() {}

package pipeline

import (
	"github.com/google/uuid"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/token"
)

// Processor is a single stage: lex, parse, or anything else that reads and
// extends the context.
type Processor interface {
	Process(ctx *Context) *Context
}

// Value is the result of the evaluation stage. It is declared here
// structurally (the evaluator's RuntimeValue satisfies it) so the pipeline
// does not depend on the evaluator package.
type Value interface {
	Inspect() string
	Print() string
}

// Context is the state threaded through the pipeline. Each stage fills in
// its output field; Err aborts the run.
type Context struct {
	// RunID correlates trace output for one pipeline run.
	RunID string
	// FilePath is the source file, "" for REPL input.
	FilePath string
	Source   string

	Tokens []token.Token
	Root   *ast.Source
	Value  Value

	Err error
}

func NewContext(filePath, source string) *Context {
	return &Context{RunID: uuid.NewString(), FilePath: filePath, Source: source}
}

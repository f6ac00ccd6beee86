package evaluator

import (
	"github.com/quill-lang/quill/internal/pipeline"
)

// Processor runs the evaluation stage against a root scope. Each Process
// call uses a fresh Evaluator, so one Processor can serve many runs; the
// REPL drives an Evaluator directly instead, to keep scope state across
// lines.
type Processor struct {
	Scope *Scope
}

func (p Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	value, err := New(p.Scope).Evaluate(ctx.Root)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Value = value
	return ctx
}

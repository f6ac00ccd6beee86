package parser

import (
	"github.com/quill-lang/quill/internal/pipeline"
)

type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	source, err := ParseSource(ctx.Tokens)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Root = source
	return ctx
}

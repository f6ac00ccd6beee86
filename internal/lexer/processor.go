package lexer

import (
	"github.com/quill-lang/quill/internal/pipeline"
)

type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	tokens, err := Lex(ctx.Source)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Tokens = tokens
	return ctx
}

package declfile

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/pipeline"
)

// LoaderProcessor turns ctx.Source into ctx.Program.
type LoaderProcessor struct{}

func (lp *LoaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	program, errs := Load(ctx.Source, ctx.FilePath)
	ctx.Program = program
	if len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, errs...)
		// A file that did not load cleanly is not checked.
		ctx.Program = &ast.Program{File: ctx.FilePath}
	}
	return ctx
}

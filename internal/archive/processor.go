package archive

import (
	"context"
	"log"

	"github.com/funvibe/declcheck/internal/pipeline"
)

// Processor records each context's diagnostics. Archive failures are logged
// and never change the outcome of the run.
type Processor struct {
	Archive *Archive
}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if p.Archive == nil {
		return ctx
	}
	if ctx.RunID == "" {
		ctx.RunID = NewRunID()
	}
	if err := p.Archive.Record(context.Background(), ctx.RunID, ctx.FilePath, ctx.Errors); err != nil {
		log.Printf("%s: %v", ctx.FilePath, err)
	}
	return ctx
}

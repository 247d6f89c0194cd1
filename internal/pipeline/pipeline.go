package pipeline

import (
	"github.com/funvibe/declcheck/internal/ast"
	"github.com/funvibe/declcheck/internal/config"
	"github.com/funvibe/declcheck/internal/diagnostics"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one file through the stages.
type PipelineContext struct {
	FilePath string
	Source   []byte
	Program  *ast.Program
	Errors   []*diagnostics.DiagnosticError
	Config   *config.Config
	RunID    string // Set by the archive stage
}

func NewPipelineContext(filePath string, source []byte, cfg *config.Config) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &PipelineContext{FilePath: filePath, Source: source, Config: cfg}
}

// Failed reports whether any collected diagnostic should fail the run.
func (ctx *PipelineContext) Failed() bool {
	for _, err := range ctx.Errors {
		if ctx.Config.Fails(string(err.Code), err.Name()) {
			return true
		}
	}
	return false
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so later stages (archive) still see the run.
	}
	return ctx
}

package analyzer

import (
	"github.com/funvibe/declcheck/internal/inference"
	"github.com/funvibe/declcheck/internal/pipeline"
	"github.com/funvibe/declcheck/internal/symbols"
)

// SemanticAnalyzerProcessor checks the loaded program's declarations.
type SemanticAnalyzerProcessor struct {
	// NewChecker builds the type checker for one file.
	// Defaults to the inference checker over a fresh global scope.
	NewChecker func() TypeChecker
}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Program == nil {
		return ctx
	}

	var checker TypeChecker
	if sap.NewChecker != nil {
		checker = sap.NewChecker()
	} else {
		checker = inference.New(symbols.NewSymbolTable())
	}

	errors := New(checker).Analyze(ctx.Program)
	for _, err := range errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	if len(errors) > 0 {
		ctx.Errors = append(ctx.Errors, errors...)
	}
	return ctx
}

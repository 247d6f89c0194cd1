// Package report renders diagnostics for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/declcheck/internal/config"
	"github.com/funvibe/declcheck/internal/diagnostics"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiDim   = "\033[2m"
)

// Options controls rendering.
type Options struct {
	Format string // config.FormatText, FormatJSON or FormatYAML
	Color  bool   // ANSI colours in text output
}

// Record is the machine-readable form of one diagnostic.
type Record struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Code    string `json:"code" yaml:"code"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// NewRecord flattens a diagnostic.
func NewRecord(err *diagnostics.DiagnosticError) Record {
	return Record{
		File:    err.File,
		Line:    err.Token.Line,
		Column:  err.Token.Column,
		Code:    string(err.Code),
		Kind:    err.Name(),
		Message: err.Message(),
	}
}

// Render writes errs to w in the requested format.
func Render(w io.Writer, errs []*diagnostics.DiagnosticError, opts Options) error {
	records := make([]Record, 0, len(errs))
	for _, err := range errs {
		records = append(records, NewRecord(err))
	}
	sortRecords(records)

	switch opts.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		return renderText(w, records, opts.Color)
	}
	return fmt.Errorf("unknown report format %q", opts.Format)
}

func renderText(w io.Writer, records []Record, color bool) error {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	for _, r := range records {
		pos := r.File
		if r.Line > 0 {
			pos = fmt.Sprintf("%s:%d:%d", pos, r.Line, r.Column)
		}
		if pos != "" {
			pos += ":"
		}
		_, err := fmt.Fprintf(w, "%s %s %s %s\n",
			paint(ansiBold, pos),
			paint(ansiRed, "error["+r.Code+"]"),
			r.Message,
			paint(ansiDim, "("+r.Kind+")"))
		if err != nil {
			return err
		}
	}
	if len(records) > 0 {
		noun := "diagnostics"
		if len(records) == 1 {
			noun = "diagnostic"
		}
		if _, err := fmt.Fprintf(w, "%d %s\n", len(records), noun); err != nil {
			return err
		}
	}
	return nil
}

// Records are ordered by position so output is stable across runs.
func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// UseColor resolves a colour mode for output written to f.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/funvibe/declcheck/internal/analyzer"
	"github.com/funvibe/declcheck/internal/archive"
	"github.com/funvibe/declcheck/internal/config"
	"github.com/funvibe/declcheck/internal/declfile"
	"github.com/funvibe/declcheck/internal/pipeline"
	"github.com/funvibe/declcheck/internal/prettyprinter"
	"github.com/funvibe/declcheck/internal/report"
	"github.com/funvibe/declcheck/internal/watch"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix(config.ToolName + ": ")

	os.Exit(run(os.Args[1:], os.Stdout))
}

type options struct {
	configPath string
	format     string
	color      string
	archive    string
	watch      bool
	dump       bool
	history    bool
	files      []string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet(config.ToolName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to "+config.DefaultConfigFile+" (default: ./"+config.DefaultConfigFile+" if present)")
	fs.StringVar(&opts.format, "format", "", "report format: text, json or yaml")
	fs.StringVar(&opts.color, "color", "", "colour text output: auto, always or never")
	fs.StringVar(&opts.archive, "archive", "", "record diagnostics in this SQLite database")
	fs.BoolVar(&opts.watch, "watch", false, "re-check files when they change")
	fs.BoolVar(&opts.dump, "dump", false, "print declarations with their checked types")
	fs.BoolVar(&opts.history, "history", false, "list archived runs of the given files and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] file%s...\n", config.ToolName, config.DeclFileExtensions[0])
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.files = fs.Args()
	if len(opts.files) == 0 {
		fs.Usage()
		return nil, errors.New("no input files")
	}
	return opts, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.archive != "" {
		cfg.Archive = opts.archive
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Print(err)
		return 2
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		log.Print(err)
		return 2
	}
	for _, f := range opts.files {
		if !isDeclFile(f) {
			log.Printf("warning: %s does not have a %s extension", f, strings.Join(config.DeclFileExtensions, " or "))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var arc *archive.Archive
	if cfg.Archive != "" {
		arc, err = archive.Open(ctx, cfg.Archive)
		if err != nil {
			log.Print(err)
			return 2
		}
		defer arc.Close()
	}

	if opts.history {
		if arc == nil {
			log.Print("-history needs -archive or an archive in the config")
			return 2
		}
		if err := printHistory(ctx, stdout, arc, opts.files); err != nil {
			log.Print(err)
			return 1
		}
		return 0
	}

	c := &checker{cfg: cfg, archive: arc, out: stdout, dump: opts.dump}
	failed := false
	for _, f := range opts.files {
		if c.checkFile(f) {
			failed = true
		}
	}

	if opts.watch {
		log.Printf("watching %d file(s), press Ctrl-C to stop", len(opts.files))
		args := argPaths(opts.files)
		err := watch.Watch(ctx, opts.files, func(path string) {
			if arg, ok := args[path]; ok {
				path = arg
			}
			c.checkFile(path)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Print(err)
			return 2
		}
		return 0
	}

	if failed {
		return 1
	}
	return 0
}

type checker struct {
	cfg     *config.Config
	archive *archive.Archive
	out     io.Writer
	dump    bool
}

// checkFile runs one file through the pipeline and reports whether it failed.
func (c *checker) checkFile(path string) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Print(err)
		return true
	}

	processors := []pipeline.Processor{
		&declfile.LoaderProcessor{},
		&analyzer.SemanticAnalyzerProcessor{},
	}
	if c.archive != nil {
		processors = append(processors, &archive.Processor{Archive: c.archive})
	}

	ctx := pipeline.New(processors...).Run(pipeline.NewPipelineContext(path, source, c.cfg))

	if c.dump && ctx.Program != nil {
		fmt.Fprint(c.out, prettyprinter.Print(ctx.Program))
	}
	color := false
	if f, ok := c.out.(*os.File); ok {
		color = report.UseColor(c.cfg.Color, f)
	}
	if err := report.Render(c.out, ctx.Errors, report.Options{Format: c.cfg.Format, Color: color}); err != nil {
		log.Print(err)
	}
	return ctx.Failed()
}

func printHistory(ctx context.Context, w io.Writer, arc *archive.Archive, files []string) error {
	for _, f := range files {
		runs, err := arc.Runs(ctx, f)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%s  %s  %s  %d diagnostic(s)\n", r.StartedAt.Format("2006-01-02 15:04:05"), r.ID, r.File, r.Total)
		}
	}
	return nil
}

// argPaths maps the absolute form of each argument back to the argument,
// so re-checks are reported and archived under the name the user gave.
func argPaths(files []string) map[string]string {
	m := make(map[string]string, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			m[abs] = f
		}
	}
	return m
}

func isDeclFile(path string) bool {
	for _, ext := range config.DeclFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

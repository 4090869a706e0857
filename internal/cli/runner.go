// Package cli implements the rlsdata command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/codec"
	"github.com/viant/rlsdata/index"
	"github.com/viant/rlsdata/store"
	"github.com/viant/rlsdata/version"
	"gopkg.in/yaml.v3"
)

const usage = `usage: rlsdata <command> [flags]

commands:
  convert  -i <url> -o <url> [-kind Json|JsonApi|Csv]  load and re-encode a document
  check    -i <url>                                    report structural issues
  summary  -i <url>                                    print a YAML summary
  upgrade  -i <url> -o <url>                           rewrite a legacy document as canonical JSON

common flags:
  -config <file>  YAML options file (cacheSize, version, output, indent)
`

// errIssues signals a successful run that found issues
var errIssues = errors.New("issues found")

// Runner executes rlsdata commands
type Runner struct {
	stdout io.Writer
	logger *log.Logger
}

// NewRunner creates a runner writing results to stdout and diagnostics to stderr
func NewRunner(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, logger: log.New(stderr, "rlsdata: ", 0)}
}

// Run executes the command in args and returns the process exit code
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.logger.Print(usage)
		return 2
	}
	var err error
	switch command := args[0]; command {
	case "convert":
		err = r.convert(ctx, args[1:])
	case "check":
		err = r.check(ctx, args[1:])
	case "summary":
		err = r.summary(ctx, args[1:])
	case "upgrade":
		err = r.upgrade(ctx, args[1:])
	case "help", "-h", "--help":
		r.logger.Print(usage)
		return 0
	default:
		r.logger.Printf("unknown command %q\n%s", command, usage)
		return 2
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errIssues):
		return 1
	case errors.Is(err, flag.ErrHelp):
		return 2
	default:
		r.logger.Printf("%s: %v", args[0], err)
		return 1
	}
}

type flags struct {
	set    *flag.FlagSet
	config string
	input  string
	output string
	kind   string
}

func (r *Runner) flags(name string, withOutput bool) *flags {
	ret := &flags{set: flag.NewFlagSet(name, flag.ContinueOnError)}
	ret.set.SetOutput(r.logger.Writer())
	ret.set.StringVar(&ret.config, "config", "", "YAML options file")
	ret.set.StringVar(&ret.input, "i", "", "input document URL")
	if withOutput {
		ret.set.StringVar(&ret.output, "o", "", "output document URL")
	}
	return ret
}

func (f *flags) parse(args []string) error {
	if err := f.set.Parse(args); err != nil {
		return err
	}
	if f.input == "" {
		return fmt.Errorf("input URL (-i) is required")
	}
	if o := f.set.Lookup("o"); o != nil && f.output == "" {
		return fmt.Errorf("output URL (-o) is required")
	}
	return nil
}

// service loads config and creates a store for it
func (r *Runner) service(location string, opts ...store.Option) (*store.Service, *Config, error) {
	cfg, err := LoadConfig(location)
	if err != nil {
		return nil, nil, err
	}
	v, _ := cfg.SchemaVersion()
	options := []store.Option{store.WithCacheSize(cfg.CacheSize), store.WithVersion(v)}
	if cfg.Indent {
		options = append(options, store.WithEncodeOptions(codec.WithIndent("", "  ")))
	}
	srv, err := store.New(append(options, opts...)...)
	return srv, cfg, err
}

func (r *Runner) convert(ctx context.Context, args []string) error {
	f := r.flags("convert", true)
	f.set.StringVar(&f.kind, "kind", "", "output format, Json, JsonApi or Csv (default from config)")
	if err := f.parse(args); err != nil {
		return err
	}
	srv, cfg, err := r.service(f.config)
	if err != nil {
		return err
	}
	if f.kind != "" {
		cfg.Output = f.kind
	}
	kind, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	doc, err := srv.Load(ctx, f.input)
	if err != nil {
		return err
	}
	converted := *doc.Analysis
	converted.Kind = kind
	URL, err := srv.Save(ctx, f.output, &converted)
	if err != nil {
		return err
	}
	r.logger.Printf("converted %v (%v) to %v (%v)", doc.URL, doc.Analysis.Kind, URL, kind)
	return nil
}

func (r *Runner) check(ctx context.Context, args []string) error {
	f := r.flags("check", false)
	if err := f.parse(args); err != nil {
		return err
	}
	srv, _, err := r.service(f.config)
	if err != nil {
		return err
	}
	doc, err := srv.Load(ctx, f.input)
	if err != nil {
		return err
	}
	issues := index.New(doc.Analysis).Check()
	for _, issue := range issues {
		fmt.Fprintln(r.stdout, issue.String())
	}
	if len(issues) > 0 {
		r.logger.Printf("%v: %d issue(s)", doc.URL, len(issues))
		return errIssues
	}
	return nil
}

func (r *Runner) summary(ctx context.Context, args []string) error {
	f := r.flags("summary", false)
	if err := f.parse(args); err != nil {
		return err
	}
	srv, _, err := r.service(f.config)
	if err != nil {
		return err
	}
	doc, err := srv.Load(ctx, f.input)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(NewSummary(doc))
	if err != nil {
		return err
	}
	_, err = r.stdout.Write(data)
	return err
}

func (r *Runner) upgrade(ctx context.Context, args []string) error {
	f := r.flags("upgrade", true)
	if err := f.parse(args); err != nil {
		return err
	}
	// input version is always detected, a pinned version would reject legacy documents
	srv, _, err := r.service(f.config, store.WithVersion(""))
	if err != nil {
		return err
	}
	doc, err := srv.Load(ctx, f.input)
	if err != nil {
		return err
	}
	upgraded := *doc.Analysis
	upgraded.Kind = analysis.Json
	URL, err := srv.Save(ctx, f.output, &upgraded)
	if err != nil {
		return err
	}
	if doc.Version == version.Current {
		r.logger.Printf("%v is already %v, rewritten to %v", doc.URL, version.Current, URL)
		return nil
	}
	r.logger.Printf("upgraded %v from %v to %v at %v", doc.URL, doc.Version, version.Current, URL)
	return nil
}

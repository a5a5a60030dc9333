package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/speakeasy-api/openapi-typegen/loader"
	"github.com/speakeasy-api/openapi-typegen/system"
	"github.com/speakeasy-api/openapi-typegen/typegen"
	"golang.org/x/sync/errgroup"
)

// OutputExtension is the file extension of generated files written to an output directory.
const OutputExtension = ".ts"

// Processor generates types for one or more inputs and writes the results.
type Processor struct {
	Loader  *loader.Loader
	Options typegen.Options

	// OutputFile receives the output of a single input. Empty writes to Stdout.
	OutputFile string
	// OutputDir receives one file per input, named after the input.
	OutputDir string

	// Optional overrides for testing. When nil, the OS file system, os.Stdout and the
	// standard logger are used.
	FS     system.WritableVirtualFS
	Stdout io.Writer
	Log    log.FieldLogger
}

func (p *Processor) fs() system.WritableVirtualFS {
	if p.FS != nil {
		return p.FS
	}
	return &system.FileSystem{}
}

func (p *Processor) stdout() io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	return os.Stdout
}

func (p *Processor) log() log.FieldLogger {
	if p.Log != nil {
		return p.Log
	}
	return log.StandardLogger()
}

// Run generates every source concurrently. Nothing is written unless all sources succeed, and
// outputs are written in the order of sources.
func (p *Processor) Run(ctx context.Context, sources []loader.Source) error {
	if len(sources) == 0 {
		return errors.New("no input: provide a file, --url or --stdin")
	}
	if len(sources) > 1 && p.OutputFile != "" {
		return errors.New("cannot use --write with multiple inputs, use --out-dir instead")
	}
	if p.OutputFile != "" && p.OutputDir != "" {
		return errors.New("cannot use --write together with --out-dir")
	}

	targets, err := p.targets(sources)
	if err != nil {
		return err
	}

	results := make([]string, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, src := range sources {
		g.Go(func() error {
			out, err := p.generate(ctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range results {
		if err := p.write(targets[i], out); err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor) generate(ctx context.Context, src loader.Source) (string, error) {
	logger := p.log().WithField("input", src.Name())
	logger.Info("Processing document")

	data, err := p.Loader.Load(ctx, src)
	if err != nil {
		return "", err
	}

	doc, err := typegen.Parse(ctx, data)
	if err != nil {
		return "", err
	}

	decls, err := typegen.Filter(ctx, doc, p.Options)
	if err != nil {
		return "", err
	}
	logger.WithFields(log.Fields{
		"dialect":    doc.Dialect(),
		"version":    doc.Version(),
		"types":      len(decls),
		"operations": doc.Operations(),
	}).Debug("Parsed document")

	return typegen.Format(decls, p.Options), nil
}

// targets returns the output file of each source. An empty target is stdout.
func (p *Processor) targets(sources []loader.Source) ([]string, error) {
	targets := make([]string, len(sources))
	if p.OutputDir == "" {
		for i := range targets {
			targets[i] = p.OutputFile
		}
		return targets, nil
	}

	seen := map[string]string{}
	for i, src := range sources {
		target := filepath.Join(p.OutputDir, OutputName(src))
		if prev, ok := seen[target]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, src.Name(), target)
		}
		seen[target] = src.Name()
		targets[i] = target
	}
	return targets, nil
}

func (p *Processor) write(target, out string) error {
	if target == "" {
		_, err := io.WriteString(p.stdout(), out+"\n")
		return err
	}

	cleanTarget := filepath.Clean(target)
	if err := p.fs().WriteFile(cleanTarget, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	p.log().WithField("output", cleanTarget).Info("Document written")

	return nil
}

// OutputName returns the file name generated for src inside an output directory: the base name
// of its path or URL with the extension replaced by OutputExtension.
func OutputName(src loader.Source) string {
	var base string
	switch {
	case src.Stdin:
		base = "stdin"
	case src.URL != "":
		base = "index"
		if u, err := url.Parse(src.URL); err == nil && u.Path != "" && u.Path != "/" {
			base = path.Base(u.Path)
		}
	default:
		base = filepath.Base(src.Path)
	}

	return strings.TrimSuffix(base, filepath.Ext(base)) + OutputExtension
}

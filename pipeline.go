package ocrsift

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tsawler/ocrsift/breaker"
	"github.com/tsawler/ocrsift/classify"
	"github.com/tsawler/ocrsift/config"
	"github.com/tsawler/ocrsift/format"
	"github.com/tsawler/ocrsift/model"
	"github.com/tsawler/ocrsift/normalize"
	"github.com/tsawler/ocrsift/xmltree"
)

// Pipeline provides a fluent interface for cleaning a FineReader
// document. Each configuration method returns a new Pipeline, so a
// configured pipeline can be shared and reused.
type Pipeline struct {
	// Source
	filename string
	reader   io.Reader
	root     *xmltree.Node

	// Configuration
	options Options
}

// clone creates a shallow copy of the Pipeline with a copy of its
// options.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		reader:   p.reader,
		root:     p.root,
		options:  p.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Pipeline instance)
// ============================================================================

// WithConfig replaces the whole configuration.
//
// Example:
//
//	cfg, _ := config.Load("ocrsift.yaml")
//	res, err := ocrsift.Open("scan.xml").WithConfig(cfg).Process(ctx)
func (p *Pipeline) WithConfig(cfg config.Config) *Pipeline {
	np := p.clone()
	np.options.config = cfg
	return np
}

// WithLogger sets the logger stage timings and page counts are written
// to. The default logger discards everything.
func (p *Pipeline) WithLogger(logger zerolog.Logger) *Pipeline {
	np := p.clone()
	np.options.logger = logger
	return np
}

// HeaderZone sets the fraction of the page height, from the top, in which
// lines are header candidates.
//
// Example:
//
//	res, err := ocrsift.Open("scan.xml").HeaderZone(0.10).Process(ctx)
func (p *Pipeline) HeaderZone(fraction float64) *Pipeline {
	np := p.clone()
	np.options.config.Classify.HeaderZone = fraction
	return np
}

// SignatureZone sets the fraction of the page height below which lines
// are signature candidates.
func (p *Pipeline) SignatureZone(fraction float64) *Pipeline {
	np := p.clone()
	np.options.config.Classify.SignatureZone = fraction
	return np
}

// LineSpacing sets the inclusive paragraph line spacing band that
// confirms a header.
func (p *Pipeline) LineSpacing(min, max float64) *Pipeline {
	np := p.clone()
	np.options.config.Classify.LineSpacingMin = min
	np.options.config.Classify.LineSpacingMax = max
	return np
}

// Workers bounds how many pages are processed at once. Zero uses one
// worker per CPU.
func (p *Pipeline) Workers(n int) *Pipeline {
	np := p.clone()
	np.options.config.Workers = n
	return np
}

// Producer sets the producer attribute written on the guard document.
func (p *Pipeline) Producer(name string) *Pipeline {
	np := p.clone()
	np.options.config.Output.Producer = name
	return np
}

// Config returns the configuration the pipeline will run with.
func (p *Pipeline) Config() config.Config {
	return p.options.config
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Process runs every stage and returns the outputs. The run stops at the
// first error: nothing is returned for a document that fails to load or
// contains malformed pages.
//
// Example:
//
//	res, err := ocrsift.Open("scan.xml").Process(ctx)
//	if err != nil {
//	    var malformed *model.MalformedInputError
//	    if errors.As(err, &malformed) {
//	        log.Printf("bad node at %s", malformed.Path)
//	    }
//	    return err
//	}
func (p *Pipeline) Process(ctx context.Context) (*Result, error) {
	cfg := p.options.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := p.options.logger.With().Str("input", p.filename).Logger()
	start := time.Now()

	root, err := p.load()
	if err != nil {
		return nil, err
	}
	schema := format.Detect(root)
	log.Debug().Str("schema", schema.String()).Msg("loaded")
	if schema == format.Unknown {
		log.Warn().Msg("no FineReader namespace on the root element")
	}

	// Foreign nodes are carried into the outputs by reference, so a
	// caller's tree is copied first.
	if p.root != nil {
		root = root.Clone()
	}

	doc, err := normalize.Document(ctx, root, p.options.normalizeOptions())
	if err != nil {
		return nil, fmt.Errorf("normalizing %s: %w", p.filename, err)
	}
	if doc.PageCount() == 0 {
		return nil, fmt.Errorf("%s: %w", p.filename, ErrNoPages)
	}
	log.Debug().Int("pages", doc.PageCount()).Int("lines", doc.LineCount()).Msg("normalized")

	guardAttrs := model.Attrs{
		{Name: "xmlns", Value: schema.Namespace()},
		{Name: "version", Value: "1.0"},
		{Name: "producer", Value: cfg.Output.Producer},
	}
	classified, err := classify.New(p.options.classifyConfig()).Classify(ctx, doc, guardAttrs)
	if err != nil {
		return nil, fmt.Errorf("classifying %s: %w", p.filename, err)
	}

	res := &Result{
		Schema:             schema,
		Main:               classified.Main,
		Guard:              classified.Guard,
		Body:               breaker.Break(classified.Main),
		HeaderWarnings:     classified.HeaderWarnings,
		SignatureWarnings:  classified.SignatureWarnings,
		PageNumberWarnings: classified.PageNumberWarnings,
	}

	stats := res.Stats()
	log.Info().
		Int("pages", stats.Pages).
		Int("body_lines", stats.BodyLines).
		Int("extracted", stats.ExtractedLines).
		Int("warnings", stats.Warnings).
		Dur("elapsed", time.Since(start)).
		Msg("processed")

	return res, nil
}

// load returns the source tree, reading and parsing it if needed.
func (p *Pipeline) load() (*xmltree.Node, error) {
	if p.root != nil {
		return p.root, nil
	}

	var (
		data []byte
		err  error
	)
	switch {
	case p.reader != nil:
		data, err = io.ReadAll(p.reader)
	case p.filename != "":
		data, err = os.ReadFile(p.filename)
	default:
		return nil, ErrNoInput
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p.filename, err)
	}

	if format.DetectFromMagic(data) == format.Unknown {
		p.options.logger.Debug().Str("input", p.filename).Msg("no FineReader namespace in the file header")
	}

	root, err := xmltree.Parse(bytes.NewReader(data), p.options.parseOptions())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p.filename, err)
	}
	return root, nil
}

package ocrsift

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/tsawler/ocrsift/classify"
	"github.com/tsawler/ocrsift/config"
	"github.com/tsawler/ocrsift/normalize"
	"github.com/tsawler/ocrsift/xmltree"
)

// Options holds the configuration of a pipeline.
type Options struct {
	config config.Config
	logger zerolog.Logger
}

// defaultOptions returns the default pipeline options: built-in
// thresholds and a logger that discards everything.
func defaultOptions() Options {
	return Options{
		config: config.Default(),
		logger: zerolog.Nop(),
	}
}

// clone creates a copy of Options. Config holds only values, so a plain
// copy is deep.
func (o Options) clone() Options {
	return Options{
		config: o.config,
		logger: o.logger,
	}
}

// workers resolves the configured worker count.
func (o Options) workers() int {
	if o.config.Workers > 0 {
		return o.config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) parseOptions() xmltree.ParseOptions {
	return xmltree.ParseOptions{LowercaseNames: o.config.Input.LowercaseNames}
}

func (o Options) normalizeOptions() normalize.Options {
	opts := o.config.Normalize
	opts.Workers = o.workers()
	return opts
}

func (o Options) classifyConfig() classify.Config {
	cfg := o.config.Classify
	cfg.Workers = o.workers()
	return cfg
}

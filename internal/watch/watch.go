// Package watch runs a handler on FineReader exports as they appear in a
// directory.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tsawler/ocrsift/format"
)

// DefaultSettle is how long a file must stay unchanged before it is
// handed to the handler.
const DefaultSettle = 250 * time.Millisecond

// Handler processes one input file.
type Handler func(ctx context.Context, path string) error

// Watcher watches a single directory, without recursion.
type Watcher struct {
	dir    string
	handle Handler
	logger zerolog.Logger

	// Settle delays handling until writes to a file have stopped for
	// this long. Exporters usually write in several chunks.
	Settle time.Duration
}

// New returns a Watcher calling handle for every input created or
// rewritten in dir.
func New(dir string, handle Handler, logger zerolog.Logger) *Watcher {
	return &Watcher{
		dir:    dir,
		handle: handle,
		logger: logger.With().Str("dir", dir).Logger(),
		Settle: DefaultSettle,
	}
}

// Wanted reports whether path looks like an input: an XML file that is
// neither hidden nor one of the outputs written next to an input.
func Wanted(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasPrefix(name, "."):
		return false
	case !format.IsXML(name):
		return false
	case strings.HasSuffix(name, "_out.xml"), strings.HasSuffix(name, "_guard.xml"):
		return false
	}
	return true
}

// Run blocks until ctx is done. Handler errors are logged and do not stop
// the watch; only a failure to set up the watch is returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.logger.Info().Msg("watching")

	pending := make(map[string]*time.Timer)
	ready := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !Wanted(ev.Name) {
				continue
			}
			if t, ok := pending[ev.Name]; ok {
				t.Reset(w.Settle)
				continue
			}
			path := ev.Name
			pending[path] = time.AfterFunc(w.Settle, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watch error")

		case path := <-ready:
			delete(pending, path)
			log := w.logger.With().Str("input", path).Logger()
			log.Debug().Msg("handling")
			if err := w.handle(ctx, path); err != nil {
				log.Error().Err(err).Msg("processing failed")
			}
		}
	}
}

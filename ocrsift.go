// Package ocrsift cleans FineReader XML exports for text extraction.
//
// A run loads the OCR output, simplifies its blocks, moves running
// headers and signature marks to a separate guard document, and flattens
// the body into page and line break markers.
//
// Basic usage:
//
//	res, err := ocrsift.Open("scan.xml").Process(ctx)
//	if err != nil {
//	    // handle error
//	}
//	for _, w := range res.Warnings() {
//	    log.Println(w)
//	}
//	err = res.Write(ocrsift.OutputPathsFor("scan.xml", ""), "  ")
//
// With options:
//
//	res, err := ocrsift.Open("scan.xml").
//	    HeaderZone(0.10).
//	    LineSpacing(380, 760).
//	    Workers(4).
//	    Process(ctx)
//
// The stages are available on their own in the normalize, classify and
// breaker packages.
package ocrsift

import (
	"errors"
	"io"

	"github.com/tsawler/ocrsift/xmltree"
)

// ErrNoPages is returned when a document contains no page element.
var ErrNoPages = errors.New("ocrsift: document has no pages")

// ErrNoInput is returned by Process when no source was configured.
var ErrNoInput = errors.New("ocrsift: no input specified")

// Open returns a Pipeline reading the FineReader document at filename.
// Nothing is read until a terminal operation such as Process runs.
//
// Example:
//
//	res, err := ocrsift.Open("scan.xml").Process(ctx)
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Pipeline reading a document from r. name is used
// in log entries and error messages only.
//
// Example:
//
//	f, _ := os.Open("scan.xml")
//	defer f.Close()
//	res, err := ocrsift.FromReader("scan.xml", f).Process(ctx)
func FromReader(name string, r io.Reader) *Pipeline {
	return &Pipeline{
		filename: name,
		reader:   r,
		options:  defaultOptions(),
	}
}

// FromTree returns a Pipeline over an already loaded document. The tree
// is read, never modified.
func FromTree(root *xmltree.Node) *Pipeline {
	return &Pipeline{
		filename: root.Name,
		root:     root,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := ocrsift.Must(ocrsift.Open("scan.xml").Process(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

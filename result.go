package ocrsift

import (
	"github.com/tsawler/ocrsift/format"
	"github.com/tsawler/ocrsift/model"
	"github.com/tsawler/ocrsift/xmltree"
)

// Result holds the outputs of a run.
type Result struct {
	// Schema is the FineReader schema the input declared.
	Schema format.Schema

	// Main is the classified body in nested form (page/div/p/line).
	Main *model.Document

	// Guard holds the extracted headers and signatures.
	Guard *model.Document

	// Body is the flattened marker form of Main, the document written
	// as the main output.
	Body *xmltree.Node

	HeaderWarnings     []model.Warning
	SignatureWarnings  []model.Warning
	PageNumberWarnings []model.Warning
}

// Stats summarizes a run.
type Stats struct {
	Pages          int
	BodyLines      int
	ExtractedLines int
	Warnings       int
}

// Warnings returns every warning: headers, then signatures, then page
// numbers, each in document order.
func (r *Result) Warnings() []model.Warning {
	out := make([]model.Warning, 0, len(r.HeaderWarnings)+len(r.SignatureWarnings)+len(r.PageNumberWarnings))
	out = append(out, r.HeaderWarnings...)
	out = append(out, r.SignatureWarnings...)
	return append(out, r.PageNumberWarnings...)
}

// GuardNode renders the guard document.
func (r *Result) GuardNode() *xmltree.Node {
	return r.Guard.Node()
}

// Stats counts pages, lines and warnings.
func (r *Result) Stats() Stats {
	return Stats{
		Pages:          r.Main.PageCount(),
		BodyLines:      r.Main.LineCount(),
		ExtractedLines: r.Guard.LineCount(),
		Warnings:       len(r.HeaderWarnings) + len(r.SignatureWarnings) + len(r.PageNumberWarnings),
	}
}

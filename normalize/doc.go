// Package normalize turns FineReader page trees into the typed model.
//
// Non-text blocks (tables, pictures, barcodes...) become [model.Figure]
// stubs that only remember their block type. Text blocks are flattened:
// the region descriptor and the <text> wrapper disappear, every <par>
// becomes a [model.Paragraph] directly under the block, and the
// formatting runs of each line are merged into one string, separated by
// single spaces.
//
//	doc, err := normalize.Document(ctx, root, normalize.DefaultOptions())
//
// Input that has already been normalized (div/p/line elements carrying
// their text directly) loads into the same model, so the output of a run
// can be fed back through the classifier.
package normalize

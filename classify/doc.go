// Package classify separates running headers and signature marks from
// the body of a normalized document.
//
// Each line is tested against two zones of its page:
//
//   - the header zone, the top HeaderZone fraction of the page height.
//     A line there is taken out as a header only if its paragraph
//     declares a line spacing inside [LineSpacingMin, LineSpacingMax].
//     Short lines without that signal stay in the body and raise a
//     header warning.
//   - the signature zone, below SignatureZone of the page height. Very
//     short lines there are taken out as signatures; slightly longer
//     ones stay and raise a signature warning.
//
// Lines taken out move to a guard document that mirrors the page, div
// and paragraph identifiers of the body. Every page of the body has a
// guard page, even an empty one.
//
//	c := classify.New(classify.DefaultConfig())
//	res, err := c.Classify(ctx, doc, model.Attrs{{Name: "producer", Value: "ocrsift"}})
//	for _, w := range res.HeaderWarnings {
//	    log.Printf("kept possible header %s: %q", w.ID, w.Text)
//	}
//
// Identifiers are assigned as a side effect: page<N>, page<N>_div<M>,
// page<N>_div<M>_p<K>, and page<N>_d<M>_p<K>_l<J> for lines that remain
// in the body.
package classify

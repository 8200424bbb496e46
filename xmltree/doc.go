// Package xmltree provides a small mutable XML node tree used to load
// FineReader documents and to write the normalized outputs.
//
// The tree keeps element order, attribute order and mixed content, which
// is what the marker-based output needs: a paragraph holds <lb/> markers
// interleaved with text nodes.
//
// # Loading
//
//	root, err := xmltree.ParseFile("scan.xml", xmltree.ParseOptions{})
//	for _, page := range root.FindAll("page") {
//	    height, _ := page.Attr("height")
//	    ...
//	}
//
// Declared encodings other than UTF-8 are decoded through
// golang.org/x/net/html/charset.
//
// # Writing
//
//	err := xmltree.WriteFile("scan_out.xml", root, "  ")
//
// Elements containing only elements are indented; elements holding text
// are written inline so that no whitespace is added to the content.
package xmltree

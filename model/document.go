package model

import "github.com/tsawler/ocrsift/xmltree"

// Document is an ordered sequence of pages plus the attributes of the
// root element.
type Document struct {
	Attrs Attrs
	Pages []*Page
}

// NewDocument creates an empty document with a copy of attrs.
func NewDocument(attrs Attrs) *Document {
	return &Document{
		Attrs: attrs.Clone(),
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// LineCount returns the number of lines on all pages.
func (d *Document) LineCount() int {
	n := 0
	for _, page := range d.Pages {
		n += page.LineCount()
	}
	return n
}

// Node renders the document in its nested form:
// document/page/div/p/line. Paragraphs without lines are left out.
func (d *Document) Node() *xmltree.Node {
	root := xmltree.NewElement(ElemDocument, d.Attrs)
	for _, page := range d.Pages {
		root.AppendChild(page.Node())
	}
	return root
}

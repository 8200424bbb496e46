package model

import "github.com/tsawler/ocrsift/xmltree"

// Page is a single page of the document.
type Page struct {
	Attrs  Attrs   // source attributes
	Width  float64 // page width in source pixels
	Height float64 // page height in source pixels

	ID         string // page<N>, assigned during classification
	PageNumber string // printed page number, if one was detected
	Header     string // running header text collected from the header zone

	Items []Item
}

// NewPage creates a page with the given source attributes and size.
func NewPage(attrs Attrs, width, height float64) *Page {
	return &Page{
		Attrs:  attrs.Clone(),
		Width:  width,
		Height: height,
		Items:  make([]Item, 0),
	}
}

// AddItem appends an item to the page.
func (p *Page) AddItem(item Item) {
	p.Items = append(p.Items, item)
}

// Containers returns the text containers of the page in order.
func (p *Page) Containers() []*Container {
	var out []*Container
	for _, item := range p.Items {
		if c, ok := item.(*Container); ok {
			out = append(out, c)
		}
	}
	return out
}

// Figures returns the figure stubs of the page in order.
func (p *Page) Figures() []*Figure {
	var out []*Figure
	for _, item := range p.Items {
		if f, ok := item.(*Figure); ok {
			out = append(out, f)
		}
	}
	return out
}

// LineCount returns the number of lines in all containers of the page.
func (p *Page) LineCount() int {
	n := 0
	for _, c := range p.Containers() {
		for _, para := range c.Paragraphs {
			n += len(para.Lines)
		}
	}
	return n
}

// Shell returns an empty page carrying a copy of the current attributes
// and identifier. Detected page numbers and headers are not copied.
func (p *Page) Shell() *Page {
	shell := NewPage(p.Attributes(), p.Width, p.Height)
	shell.ID = p.ID
	return shell
}

// Attributes returns the source attributes merged with the computed
// id, pagenb and pageheader values.
func (p *Page) Attributes() Attrs {
	attrs := p.Attrs.Clone()
	if p.ID != "" {
		attrs.Set(AttrID, p.ID)
	}
	if p.PageNumber != "" {
		attrs.Set(AttrPageNumber, p.PageNumber)
	}
	if p.Header != "" {
		attrs.Set(AttrPageHeader, p.Header)
	}
	return attrs
}

// Node renders the page with its items nested under it.
func (p *Page) Node() *xmltree.Node {
	n := xmltree.NewElement(ElemPage, p.Attributes())
	for _, item := range p.Items {
		if child := item.Node(); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

package model

import (
	"strings"

	"github.com/tsawler/ocrsift/xmltree"
)

// Item is anything a page can hold directly.
type Item interface {
	// Node renders the item, or returns nil if it has nothing to write.
	Node() *xmltree.Node
}

// LineType is the classification given to a line moved to the guard
// document. Body lines have the empty type.
type LineType string

const (
	LineBody      LineType = ""
	LineHeader    LineType = "header"
	LineSignature LineType = "signature"
)

// Container is a normalized text block (<div>).
type Container struct {
	Attrs      Attrs
	ID         string // page<N>_div<M>
	Paragraphs []*Paragraph
}

// Shell returns an empty container with a copy of the current attributes.
func (c *Container) Shell() *Container {
	return &Container{Attrs: c.Attributes(), ID: c.ID}
}

// Attributes returns the source attributes merged with the id.
func (c *Container) Attributes() Attrs {
	attrs := c.Attrs.Clone()
	if c.ID != "" {
		attrs.Set(AttrID, c.ID)
	}
	return attrs
}

// Node renders the container and its non-empty paragraphs.
func (c *Container) Node() *xmltree.Node {
	n := xmltree.NewElement(ElemContainer, c.Attributes())
	for _, p := range c.Paragraphs {
		if child := p.Node(); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

// Paragraph is a normalized FineReader paragraph (<p>).
type Paragraph struct {
	Attrs Attrs
	ID    string // page<N>_div<M>_p<K>

	// LineSpacing is the paragraph's lineSpacing attribute, nil when the
	// source did not declare one.
	LineSpacing *float64

	Lines []*Line
}

// Shell returns an empty paragraph with a copy of the current
// attributes.
func (p *Paragraph) Shell() *Paragraph {
	return &Paragraph{Attrs: p.Attributes(), ID: p.ID, LineSpacing: p.LineSpacing}
}

// Attributes returns the source attributes merged with the id.
func (p *Paragraph) Attributes() Attrs {
	attrs := p.Attrs.Clone()
	if p.ID != "" {
		attrs.Set(AttrID, p.ID)
	}
	return attrs
}

// Node renders the paragraph, or returns nil when it has no lines.
func (p *Paragraph) Node() *xmltree.Node {
	if len(p.Lines) == 0 {
		return nil
	}
	n := xmltree.NewElement(ElemParagraph, p.Attributes())
	for _, line := range p.Lines {
		n.AppendChild(line.Node())
	}
	return n
}

// Line is one line of merged text.
type Line struct {
	Attrs  Attrs
	Bottom float64 // the b attribute: bottom edge, in page pixels
	ID     string  // page<N>_d<M>_p<K>_l<J>, body lines only
	Text   string
	Type   LineType
}

// Trimmed returns the text without surrounding whitespace.
func (l *Line) Trimmed() string {
	return strings.TrimSpace(l.Text)
}

// Attributes returns the source attributes merged with the id and type.
func (l *Line) Attributes() Attrs {
	attrs := l.Attrs.Clone()
	if l.ID != "" {
		attrs.Set(AttrID, l.ID)
	}
	if l.Type != LineBody {
		attrs.Set(AttrType, string(l.Type))
	}
	return attrs
}

// Node renders the line with its text as the only child.
func (l *Line) Node() *xmltree.Node {
	n := xmltree.NewElement(ElemLine, l.Attributes())
	if l.Text != "" {
		n.AppendChild(xmltree.NewText(l.Text))
	}
	return n
}

// Figure stands in for a non-text block. Only the block type survives
// normalization.
type Figure struct {
	Type string
}

// Node renders the figure as an empty element.
func (f *Figure) Node() *xmltree.Node {
	return xmltree.NewElement(ElemFigure, Attrs{{Name: AttrType, Value: f.Type}})
}

// Raw is a page child the pipeline does not interpret. It is written
// back unchanged.
type Raw struct {
	Source *xmltree.Node
}

// Node returns the source node.
func (r *Raw) Node() *xmltree.Node {
	return r.Source
}

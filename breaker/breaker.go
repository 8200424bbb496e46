// Package breaker flattens a classified document into marker form.
//
// Pages stop being containers: each becomes a <pb/> marker carrying the
// page attributes, followed by the page's content as siblings. Inside
// paragraphs, each line becomes an <lb/> marker carrying the line
// attributes, immediately followed by the line text:
//
//	<document>
//	  <pb id="page1" height="3508" pagenb="42"/>
//	  <div id="page1_div1" type="Text">
//	    <p id="page1_div1_p1"><lb id="page1_d1_p1_l1" b="510"/>first line<lb .../>second line</p>
//	  </div>
//	  <figure type="Picture"/>
//	</document>
//
// A text assembler can then read the body by scanning for pb and lb
// boundaries while accumulating text.
package breaker

import (
	"github.com/tsawler/ocrsift/model"
	"github.com/tsawler/ocrsift/xmltree"
)

// Break builds the flat marker tree for doc. doc is not modified.
func Break(doc *model.Document) *xmltree.Node {
	root := xmltree.NewElement(model.ElemDocument, nil)
	for _, page := range doc.Pages {
		for _, n := range Page(page) {
			root.AppendChild(n)
		}
	}
	return root
}

// Page returns the page break marker for page followed by its content.
func Page(page *model.Page) []*xmltree.Node {
	out := []*xmltree.Node{xmltree.NewElement(model.ElemPageBreak, page.Attributes())}
	for _, item := range page.Items {
		switch it := item.(type) {
		case *model.Container:
			out = append(out, container(it))
		default:
			if n := item.Node(); n != nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func container(c *model.Container) *xmltree.Node {
	div := xmltree.NewElement(model.ElemContainer, c.Attributes())
	for _, p := range c.Paragraphs {
		if len(p.Lines) == 0 {
			continue
		}
		div.AppendChild(paragraph(p))
	}
	return div
}

func paragraph(p *model.Paragraph) *xmltree.Node {
	n := xmltree.NewElement(model.ElemParagraph, p.Attributes())
	for _, line := range p.Lines {
		n.AppendChild(xmltree.NewElement(model.ElemLineBreak, line.Attributes()))
		if line.Text != "" {
			n.AppendChild(xmltree.NewText(line.Text))
		}
	}
	return n
}

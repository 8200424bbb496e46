package normalize

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/ocrsift/model"
	"github.com/tsawler/ocrsift/xmltree"
)

// Options controls normalization.
type Options struct {
	// UnicodeNFC composes merged line text into Unicode normal form C.
	// FineReader sometimes emits decomposed diacritics in separate runs.
	UnicodeNFC bool `yaml:"unicode_nfc"`

	// Workers bounds how many pages are normalized at once. Zero or less
	// means no limit.
	Workers int `yaml:"-"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		UnicodeNFC: true,
	}
}

// Document normalizes every page found under root, in document order.
// Pages are independent, so they are processed concurrently; the result
// keeps the source order.
func Document(ctx context.Context, root *xmltree.Node, opts Options) (*model.Document, error) {
	nodes := root.FindAll(model.ElemPage)
	pages := make([]*model.Page, len(nodes))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, node := range nodes {
		i, node := i, node
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := fmt.Sprintf("%s/%s[%d]", root.Local(), model.ElemPage, i+1)
			page, err := Page(node, path, opts)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := model.NewDocument(root.Attrs)
	for _, page := range pages {
		doc.AddPage(page)
	}
	return doc, nil
}

// Page normalizes a single <page> node. path names the node in errors.
func Page(node *xmltree.Node, path string, opts Options) (*model.Page, error) {
	height, err := model.FloatAttr(node.Attrs, model.AttrHeight, path)
	if err != nil {
		return nil, err
	}
	width, err := model.OptionalFloatAttr(node.Attrs, model.AttrWidth, path)
	if err != nil {
		return nil, err
	}

	page := model.NewPage(node.Attrs, 0, height)
	if width != nil {
		page.Width = *width
	}

	counts := make(map[string]int)
	for _, child := range node.Elements() {
		name := strings.ToLower(child.Local())
		counts[name]++
		childPath := fmt.Sprintf("%s/%s[%d]", path, child.Local(), counts[name])

		switch {
		case child.Is(model.SrcBlock):
			item, err := block(child, childPath, opts)
			if err != nil {
				return nil, err
			}
			page.AddItem(item)

		case child.Is(model.ElemContainer):
			c, err := container(child, childPath, opts)
			if err != nil {
				return nil, err
			}
			page.AddItem(c)

		case child.Is(model.ElemFigure):
			t, _ := child.Attr(model.AttrType)
			page.AddItem(&model.Figure{Type: t})

		default:
			page.AddItem(&model.Raw{Source: child})
		}
	}

	return page, nil
}

// block converts a FineReader <block> into a container or a figure stub.
func block(node *xmltree.Node, path string, opts Options) (model.Item, error) {
	blockType, err := model.RequiredAttr(node.Attrs, model.AttrBlockType, path)
	if err != nil {
		return nil, err
	}
	if blockType != model.BlockTypeText {
		return &model.Figure{Type: blockType}, nil
	}

	c := &model.Container{Attrs: node.Attrs.Clone()}
	c.Attrs.Set(model.AttrType, model.BlockTypeText)
	c.Attrs.Delete(model.AttrBlockName)

	// Paragraphs are collected wherever they sit under the block; the
	// region descriptor holds none, and <text> wrappers are dropped by
	// not being copied.
	for i, par := range node.FindAll(model.SrcParagraph) {
		p, err := paragraph(par, fmt.Sprintf("%s/%s[%d]", path, model.SrcParagraph, i+1), opts)
		if err != nil {
			return nil, err
		}
		c.Paragraphs = append(c.Paragraphs, p)
	}
	return c, nil
}

// container loads an already normalized <div>.
func container(node *xmltree.Node, path string, opts Options) (*model.Container, error) {
	c := &model.Container{Attrs: node.Attrs.Clone()}
	for i, p := range node.FindAll(model.ElemParagraph) {
		para, err := paragraph(p, fmt.Sprintf("%s/%s[%d]", path, model.ElemParagraph, i+1), opts)
		if err != nil {
			return nil, err
		}
		c.Paragraphs = append(c.Paragraphs, para)
	}
	return c, nil
}

func paragraph(node *xmltree.Node, path string, opts Options) (*model.Paragraph, error) {
	spacing, err := model.OptionalFloatAttr(node.Attrs, model.AttrLineSpacing, path)
	if err != nil {
		return nil, err
	}
	p := &model.Paragraph{
		Attrs:       node.Attrs.Clone(),
		LineSpacing: spacing,
	}
	for i, ln := range node.FindAll(model.SrcLine) {
		linePath := fmt.Sprintf("%s/%s[%d]", path, model.SrcLine, i+1)
		bottom, err := model.FloatAttr(ln.Attrs, model.AttrBottom, linePath)
		if err != nil {
			return nil, err
		}
		p.Lines = append(p.Lines, &model.Line{
			Attrs:  ln.Attrs.Clone(),
			Bottom: bottom,
			Text:   lineText(ln, opts),
		})
	}
	return p, nil
}

// lineText merges the formatting runs of a line with single spaces. A
// line without runs keeps its own character data.
func lineText(line *xmltree.Node, opts Options) string {
	runs := line.FindAll(model.SrcFormatting)
	if len(runs) == 0 {
		return compose(line.Text(), opts)
	}

	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		parts = append(parts, runText(run))
	}
	return compose(strings.Join(parts, " "), opts)
}

// runText returns the text of one formatting run. Character-level
// exports carry one <charParams> per character; whitespace characters
// arrive empty because whitespace-only character data is not loaded.
func runText(run *xmltree.Node) string {
	chars := run.FindAll(model.SrcCharParams)
	if len(chars) == 0 {
		return run.Text()
	}
	var sb strings.Builder
	for _, ch := range chars {
		if t := ch.Text(); t != "" {
			sb.WriteString(t)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func compose(s string, opts Options) string {
	if opts.UnicodeNFC {
		return norm.NFC.String(s)
	}
	return s
}

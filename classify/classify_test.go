package classify

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/ocrsift/model"
)

// Helpers to build normalized pages for testing

func spacing(v float64) *float64 {
	return &v
}

func line(b float64, text string) *model.Line {
	return &model.Line{
		Attrs:  model.Attrs{{Name: "b", Value: strconv.FormatFloat(b, 'f', -1, 64)}},
		Bottom: b,
		Text:   text,
	}
}

func para(ls *float64, lines ...*model.Line) *model.Paragraph {
	return &model.Paragraph{LineSpacing: ls, Lines: lines}
}

func div(paras ...*model.Paragraph) *model.Container {
	return &model.Container{Attrs: model.Attrs{{Name: "type", Value: "Text"}}, Paragraphs: paras}
}

func page(height float64, items ...model.Item) *model.Page {
	p := model.NewPage(model.Attrs{{Name: "height", Value: strconv.FormatFloat(height, 'f', -1, 64)}}, 0, height)
	for _, item := range items {
		p.AddItem(item)
	}
	return p
}

func document(pages ...*model.Page) *model.Document {
	doc := model.NewDocument(nil)
	for _, p := range pages {
		doc.AddPage(p)
	}
	return doc
}

func classify(t *testing.T, doc *model.Document) *Result {
	t.Helper()
	res, err := New(DefaultConfig()).Classify(context.Background(), doc, nil)
	require.NoError(t, err)
	return res
}

func guardLines(doc *model.Document) []*model.Line {
	var out []*model.Line
	for _, p := range doc.Pages {
		for _, c := range p.Containers() {
			for _, para := range c.Paragraphs {
				out = append(out, para.Lines...)
			}
		}
	}
	return out
}

func TestClassify_HeaderWithSignal(t *testing.T) {
	p := page(1000, div(para(spacing(500), line(80, "Chapter One"))))
	res := classify(t, document(p))

	assert.Empty(t, res.HeaderWarnings)
	assert.Equal(t, 0, res.Main.LineCount())

	extracted := guardLines(res.Guard)
	require.Len(t, extracted, 1)
	assert.Equal(t, model.LineHeader, extracted[0].Type)
	assert.Equal(t, "Chapter One", extracted[0].Text)
	assert.Empty(t, extracted[0].ID, "extracted lines are not numbered")

	assert.Equal(t, "Chapter One ", p.Header)
	assert.Empty(t, p.PageNumber)
}

func TestClassify_HeaderWithoutSignal(t *testing.T) {
	tests := []struct {
		name    string
		spacing *float64
	}{
		{"no linespacing", nil},
		{"linespacing below band", spacing(389)},
		{"linespacing above band", spacing(751)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := line(80, "Some Title")
			res := classify(t, document(page(1000, div(para(tt.spacing, l)))))

			assert.Equal(t, "page1_d1_p1_l1", l.ID)
			assert.Equal(t, model.LineBody, l.Type)
			assert.Equal(t, 1, res.Main.LineCount())
			assert.Empty(t, guardLines(res.Guard))
			assert.Equal(t, []model.Warning{
				{Kind: model.HeaderWarning, ID: "page1_d1_p1_l1", Text: "Some Title"},
			}, res.HeaderWarnings)
		})
	}
}

func TestClassify_LineSpacingBandIsInclusive(t *testing.T) {
	for _, ls := range []float64{390, 750} {
		res := classify(t, document(page(1000, div(para(spacing(ls), line(10, "Running head"))))))
		assert.Len(t, guardLines(res.Guard), 1, "linespacing %v", ls)
	}
}

func TestClassify_LongHeaderZoneLineNoWarning(t *testing.T) {
	long := "This line is much longer than any running header would be in a book"
	l := line(80, long)
	res := classify(t, document(page(1000, div(para(nil, l)))))

	assert.Empty(t, res.HeaderWarnings)
	assert.Equal(t, "page1_d1_p1_l1", l.ID)
}

func TestClassify_Signature(t *testing.T) {
	l := line(950, "—")
	res := classify(t, document(page(1000, div(para(nil, l)))))

	extracted := guardLines(res.Guard)
	require.Len(t, extracted, 1)
	assert.Same(t, l, extracted[0], "extraction moves the line")
	assert.Equal(t, model.LineSignature, l.Type)
	assert.Empty(t, l.ID)
	assert.Equal(t, 0, res.Main.LineCount())
	assert.Empty(t, res.SignatureWarnings)
}

func TestClassify_SignatureZoneLengths(t *testing.T) {
	tests := []struct {
		text      string
		extracted bool
		warned    bool
	}{
		{"", true, false},
		{" a ", true, false},
		{"ab", true, false},
		{"xyz", false, true},
		{"abcd", false, true},
		{"  abcd  ", false, true},
		{"abcde", false, false},
		{"1. A footnote that runs long.", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			l := line(950, tt.text)
			res := classify(t, document(page(1000, div(para(nil, l)))))

			assert.Equal(t, tt.extracted, len(guardLines(res.Guard)) == 1)
			if tt.warned {
				assert.Equal(t, []model.Warning{
					{Kind: model.SignatureWarning, ID: "page1_d1_p1_l1", Text: tt.text},
				}, res.SignatureWarnings)
			} else {
				assert.Empty(t, res.SignatureWarnings)
			}
			if !tt.extracted {
				assert.Equal(t, "page1_d1_p1_l1", l.ID)
			}
		})
	}
}

func TestClassify_ZoneBoundaries(t *testing.T) {
	top := line(120, "A")
	bottom := line(910, "B")
	p := page(1000, div(para(spacing(500), top, bottom)))
	res := classify(t, document(p))

	assert.Empty(t, guardLines(res.Guard), "lines exactly on a boundary are body lines")
	assert.Empty(t, res.HeaderWarnings)
	assert.Empty(t, res.SignatureWarnings)
	assert.Equal(t, "page1_d1_p1_l1", top.ID)
	assert.Equal(t, "page1_d1_p1_l2", bottom.ID)
}

func TestClassify_NumericHeaderBecomesPageNumber(t *testing.T) {
	p := page(1000, div(
		para(spacing(500), line(50, "Running Title"), line(60, " 42 ")),
	))
	res := classify(t, document(p))

	assert.Equal(t, "42", p.PageNumber)
	assert.Equal(t, "Running Title ", p.Header)
	assert.Len(t, guardLines(res.Guard), 2)

	attrs := p.Attributes()
	nb, _ := attrs.Get(model.AttrPageNumber)
	assert.Equal(t, "42", nb)
}

func TestClassify_HeaderStringAcrossContainers(t *testing.T) {
	p := page(1000,
		div(para(spacing(400), line(30, "LE PLAY"))),
		div(para(spacing(400), line(40, "LES OUVRIERS"))),
	)
	classify(t, document(p))

	assert.Equal(t, "LE PLAY LES OUVRIERS ", p.Header)
}

func TestClassify_Identifiers(t *testing.T) {
	l1 := line(500, "one")
	h := line(50, "HEADER")
	l2 := line(520, "two")
	l3 := line(600, "three")
	l4 := line(300, "four")

	p1 := page(1000,
		div(para(spacing(500), l1, h, l2), para(nil, l3)),
		&model.Figure{Type: "Picture"},
		div(para(nil, l4)),
	)
	p2 := page(1000)
	doc := document(p1, p2)
	res := classify(t, doc)

	assert.Equal(t, "page1", p1.ID)
	assert.Equal(t, "page2", p2.ID)

	divs := p1.Containers()
	assert.Equal(t, "page1_div1", divs[0].ID)
	assert.Equal(t, "page1_div2", divs[1].ID, "figures do not take a div number")
	assert.Equal(t, "page1_div1_p1", divs[0].Paragraphs[0].ID)
	assert.Equal(t, "page1_div1_p2", divs[0].Paragraphs[1].ID)

	assert.Equal(t, "page1_d1_p1_l1", l1.ID)
	assert.Equal(t, "page1_d1_p1_l2", l2.ID, "extracted lines do not consume a number")
	assert.Equal(t, "page1_d1_p2_l1", l3.ID)
	assert.Equal(t, "page1_d2_p1_l1", l4.ID)
	assert.Equal(t, []*model.Line{l1, l2}, divs[0].Paragraphs[0].Lines)

	assert.Same(t, res.Main, doc)
}

func TestClassify_GuardMirrorsMain(t *testing.T) {
	doc := document(
		page(1000, div(para(spacing(500), line(50, "Head"), line(500, "body")))),
		page(1000, div(para(nil, line(500, "body")))),
		page(1000),
	)
	res := classify(t, doc)

	require.Equal(t, res.Main.PageCount(), res.Guard.PageCount())
	for i := range res.Main.Pages {
		assert.Equal(t, res.Main.Pages[i].ID, res.Guard.Pages[i].ID)
	}

	// page 1: the guard chain page/div/p carries matching identifiers
	g1 := res.Guard.Pages[0]
	require.Len(t, g1.Containers(), 1)
	gDiv := g1.Containers()[0]
	assert.Equal(t, "page1_div1", gDiv.ID)
	id, _ := gDiv.Attributes().Get(model.AttrID)
	assert.Equal(t, "page1_div1", id)
	require.Len(t, gDiv.Paragraphs, 1)
	assert.Equal(t, "page1_div1_p1", gDiv.Paragraphs[0].ID)

	// pages without extracted lines still have an empty guard page
	assert.Empty(t, res.Guard.Pages[1].Items)
	assert.Empty(t, res.Guard.Pages[2].Items)

	// the guard page shell does not carry the detected header
	assert.Empty(t, g1.Header)
	assert.Equal(t, "Head ", res.Main.Pages[0].Header)
}

func TestClassify_GuardPrunesEmptyShells(t *testing.T) {
	p := page(1000,
		div(para(nil, line(500, "body")), para(spacing(500), line(40, "Head"))),
		div(para(nil, line(600, "more body"))),
	)
	res := classify(t, document(p))

	g := res.Guard.Pages[0]
	require.Len(t, g.Containers(), 1, "only the div holding an extracted line")
	require.Len(t, g.Containers()[0].Paragraphs, 1, "only the paragraph holding an extracted line")
	assert.Equal(t, "page1_div1_p2", g.Containers()[0].Paragraphs[0].ID)
}

func TestClassify_EmptiedParagraphDroppedFromOutput(t *testing.T) {
	p := page(1000, div(
		para(spacing(500), line(40, "Head")),
		para(nil, line(500, "body")),
	))
	res := classify(t, document(p))

	c := res.Main.Pages[0].Containers()[0]
	assert.Empty(t, c.Paragraphs[0].Lines)
	assert.Nil(t, c.Paragraphs[0].Node(), "empty paragraphs are not rendered")
	assert.NotNil(t, c.Paragraphs[1].Node())
}

func TestClassify_NoUnconditionalLinesRemain(t *testing.T) {
	var paras []*model.Paragraph
	for b := 0.0; b <= 1000; b += 25 {
		for _, text := range []string{"", "x", "xy", "xyz", "a longer line of body text"} {
			paras = append(paras, para(spacing(500), line(b, text)))
		}
	}
	p := page(1000, div(paras...))
	res := classify(t, document(p))

	cfg := DefaultConfig()
	for _, c := range res.Main.Pages[0].Containers() {
		for _, para := range c.Paragraphs {
			for _, l := range para.Lines {
				assert.False(t, l.Bottom < 1000*cfg.HeaderZone, "confirmed header left in body: %+v", l)
				if l.Bottom > 1000*cfg.SignatureZone {
					assert.Greater(t, len(l.Trimmed()), cfg.SignatureMaxLen, "signature left in body: %+v", l)
				}
			}
		}
	}
}

func TestClassify_IdempotentIdentifiers(t *testing.T) {
	doc := document(
		page(1000,
			div(para(nil, line(80, "Untitled"), line(500, "a"), line(950, "xyz"))),
			div(para(spacing(600), line(50, "Head"), line(600, "b"))),
		),
		page(1000, div(para(nil, line(400, "c")))),
	)
	first := classify(t, doc)

	collect := func(d *model.Document) []string {
		var ids []string
		for _, p := range d.Pages {
			ids = append(ids, p.ID)
			for _, c := range p.Containers() {
				ids = append(ids, c.ID)
				for _, para := range c.Paragraphs {
					ids = append(ids, para.ID)
					for _, l := range para.Lines {
						ids = append(ids, l.ID)
					}
				}
			}
		}
		return ids
	}

	before := collect(first.Main)
	second := classify(t, first.Main)
	assert.Equal(t, before, collect(second.Main))
	assert.Empty(t, guardLines(second.Guard))
	assert.Equal(t, first.HeaderWarnings, second.HeaderWarnings)
	assert.Equal(t, first.SignatureWarnings, second.SignatureWarnings)
}

func TestClassify_WarningOrder(t *testing.T) {
	doc := document(
		page(1000, div(para(nil, line(10, "one"), line(20, "two")))),
		page(1000, div(para(nil, line(10, "three"), line(990, "sig1")))),
	)
	c := New(Config{
		HeaderZone: 0.12, SignatureZone: 0.91,
		LineSpacingMin: 390, LineSpacingMax: 750,
		HeaderWarnMaxLen: 55, SignatureMaxLen: 2,
		SignatureWarnMinLen: 3, SignatureWarnMaxLen: 5,
		Workers: 2,
	})
	out, err := c.Classify(context.Background(), doc, nil)
	require.NoError(t, err)

	var texts []string
	for _, w := range out.Warnings() {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"one", "two", "three", "sig1"}, texts)
}

func TestClassify_GuardRootAttributes(t *testing.T) {
	attrs := model.Attrs{{Name: "producer", Value: "ocrsift"}}
	res, err := New(DefaultConfig()).Classify(context.Background(), document(page(1000)), attrs)
	require.NoError(t, err)
	assert.Equal(t, attrs, res.Guard.Attrs)
}

func TestClassify_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).Classify(ctx, document(page(1000)), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"header zone above one", func(c *Config) { c.HeaderZone = 1.5 }},
		{"signature zone negative", func(c *Config) { c.SignatureZone = -0.1 }},
		{"zones crossed", func(c *Config) { c.HeaderZone = 0.95 }},
		{"spacing band inverted", func(c *Config) { c.LineSpacingMin = 800 }},
		{"warning band inverted", func(c *Config) { c.SignatureWarnMinLen = 6 }},
		{"negative length", func(c *Config) { c.SignatureMaxLen = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

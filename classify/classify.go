package classify

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/ocrsift/model"
)

// Result holds the outputs of a classification run.
type Result struct {
	// Main is the body document: the input, with identifiers assigned and
	// extracted lines removed.
	Main *model.Document

	// Guard holds the extracted header and signature lines, under page,
	// div and paragraph shells matching the body identifiers.
	Guard *model.Document

	HeaderWarnings     []model.Warning
	SignatureWarnings  []model.Warning
	PageNumberWarnings []model.Warning
}

// Warnings returns every warning, headers first, then signatures, then
// page numbers.
func (r *Result) Warnings() []model.Warning {
	out := make([]model.Warning, 0, len(r.HeaderWarnings)+len(r.SignatureWarnings)+len(r.PageNumberWarnings))
	out = append(out, r.HeaderWarnings...)
	out = append(out, r.SignatureWarnings...)
	return append(out, r.PageNumberWarnings...)
}

// Classifier applies the header and signature heuristics.
type Classifier struct {
	config Config
}

// New creates a classifier with the given thresholds.
func New(config Config) *Classifier {
	return &Classifier{config: config}
}

// Config returns the thresholds in use.
func (c *Classifier) Config() Config {
	return c.config
}

// pageResult is the outcome of classifying one page.
type pageResult struct {
	guard      *model.Page
	headers    []model.Warning
	signatures []model.Warning
}

// Classify processes doc in place and returns the body and guard
// documents. guardAttrs become the attributes of the guard root.
//
// Pages only depend on their own position, so they are classified
// concurrently; lines within a page are always handled in order.
func (c *Classifier) Classify(ctx context.Context, doc *model.Document, guardAttrs model.Attrs) (*Result, error) {
	results := make([]pageResult, len(doc.Pages))

	g, ctx := errgroup.WithContext(ctx)
	if c.config.Workers > 0 {
		g.SetLimit(c.config.Workers)
	}
	for i, page := range doc.Pages {
		i, page := i, page
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.classifyPage(i+1, page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Main:  doc,
		Guard: model.NewDocument(guardAttrs),
	}
	for _, pr := range results {
		res.Guard.AddPage(pr.guard)
		res.HeaderWarnings = append(res.HeaderWarnings, pr.headers...)
		res.SignatureWarnings = append(res.SignatureWarnings, pr.signatures...)
	}
	if c.config.CheckPageNumbers {
		res.PageNumberWarnings = CheckPageNumbers(doc.Pages)
	}
	return res, nil
}

// classifyPage assigns identifiers to the n-th page (1-based) and its
// content, moves header and signature lines to a new guard page, and
// returns that page with the warnings raised.
func (c *Classifier) classifyPage(n int, page *model.Page) pageResult {
	page.ID = fmt.Sprintf("page%d", n)
	guardPage := page.Shell()

	var (
		header     strings.Builder
		headers    []model.Warning
		signatures []model.Warning
	)

	headerLimit := page.Height * c.config.HeaderZone
	signatureLimit := page.Height * c.config.SignatureZone

	for d, div := range page.Containers() {
		div.ID = fmt.Sprintf("page%d_div%d", n, d+1)
		guardDiv := div.Shell()

		for k, p := range div.Paragraphs {
			p.ID = fmt.Sprintf("page%d_div%d_p%d", n, d+1, k+1)
			guardP := p.Shell()
			linePrefix := fmt.Sprintf("page%d_d%d_p%d_l", n, d+1, k+1)

			kept := p.Lines[:0]
			count := 0
			keep := func(line *model.Line) {
				count++
				line.ID = linePrefix + strconv.Itoa(count)
				kept = append(kept, line)
			}

			for _, line := range p.Lines {
				trimmed := line.Trimmed()
				length := utf8.RuneCountInString(trimmed)

				switch {
				case line.Bottom < headerLimit:
					if c.confirmsHeader(p) {
						line.Type = model.LineHeader
						guardP.Lines = append(guardP.Lines, line)
						if trimmed == "" {
							continue
						}
						if isNumber(trimmed) {
							page.PageNumber = trimmed
						} else {
							header.WriteString(line.Text)
							header.WriteByte(' ')
						}
						continue
					}
					keep(line)
					if length < c.config.HeaderWarnMaxLen {
						headers = append(headers, model.Warning{Kind: model.HeaderWarning, ID: line.ID, Text: line.Text})
					}

				case line.Bottom > signatureLimit:
					switch {
					case length <= c.config.SignatureMaxLen:
						line.Type = model.LineSignature
						guardP.Lines = append(guardP.Lines, line)
					case length >= c.config.SignatureWarnMinLen && length < c.config.SignatureWarnMaxLen:
						keep(line)
						signatures = append(signatures, model.Warning{Kind: model.SignatureWarning, ID: line.ID, Text: line.Text})
					default:
						keep(line)
					}

				default:
					keep(line)
				}
			}

			// Clear the tail so extracted lines are only reachable from
			// the guard paragraph.
			for i := len(kept); i < len(p.Lines); i++ {
				p.Lines[i] = nil
			}
			p.Lines = kept

			if len(guardP.Lines) > 0 {
				guardDiv.Paragraphs = append(guardDiv.Paragraphs, guardP)
			}
		}

		if len(guardDiv.Paragraphs) > 0 {
			guardPage.AddItem(guardDiv)
		}
	}

	if header.Len() > 0 {
		page.Header = header.String()
	}

	return pageResult{guard: guardPage, headers: headers, signatures: signatures}
}

// confirmsHeader reports whether the paragraph's line spacing is in the
// band associated with running headers.
func (c *Classifier) confirmsHeader(p *model.Paragraph) bool {
	if p.LineSpacing == nil {
		return false
	}
	ls := *p.LineSpacing
	return ls >= c.config.LineSpacingMin && ls <= c.config.LineSpacingMax
}

// isNumber reports whether s is an integer, optionally signed.
func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

package classify

import (
	"strconv"

	"github.com/tsawler/ocrsift/model"
)

// CheckPageNumbers compares the page numbers detected in running
// headers. A number that differs from the previous detected number plus
// the count of pages in between is reported as a warning carrying the
// page id and the detected number. Pages without a detected number are
// skipped; the first detected number is never reported.
func CheckPageNumbers(pages []*model.Page) []model.Warning {
	var (
		warnings []model.Warning
		prevNum  int
		prevIdx  = -1
	)

	for i, page := range pages {
		if page.PageNumber == "" {
			continue
		}
		num, err := strconv.Atoi(page.PageNumber)
		if err != nil {
			continue
		}
		if prevIdx >= 0 && num != prevNum+(i-prevIdx) {
			warnings = append(warnings, model.Warning{
				Kind: model.PageNumberWarning,
				ID:   page.ID,
				Text: page.PageNumber,
			})
		}
		prevNum, prevIdx = num, i
	}

	return warnings
}

package model

import "fmt"

// WarningKind identifies the heuristic that raised a warning.
type WarningKind int

const (
	// HeaderWarning marks a short line in the header zone that lacked the
	// confirming line spacing and was kept in the body.
	HeaderWarning WarningKind = iota
	// SignatureWarning marks a short line in the signature zone that was
	// too long to be taken out.
	SignatureWarning
	// PageNumberWarning marks a detected page number that does not follow
	// the previous one.
	PageNumberWarning
)

func (k WarningKind) String() string {
	switch k {
	case HeaderWarning:
		return "header"
	case SignatureWarning:
		return "signature"
	case PageNumberWarning:
		return "pagenumber"
	default:
		return "unknown"
	}
}

// Warning records a line or page the classifier left alone but was not
// sure about.
type Warning struct {
	Kind WarningKind
	ID   string // identifier of the line, or of the page for page numbers
	Text string // raw text of the line, or the detected page number
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %q", w.Kind, w.ID, w.Text)
}

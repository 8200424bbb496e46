package classify

import (
	"errors"
	"fmt"
)

// Config holds the thresholds of the header and signature heuristics.
// The defaults describe FineReader exports of single-column printed
// books; other corpora may need recalibration.
type Config struct {
	// HeaderZone is the fraction of the page height, from the top, in
	// which lines are header candidates. The test is strict: b < h*zone.
	// Default: 0.12
	HeaderZone float64 `yaml:"header_zone"`

	// SignatureZone is the fraction of the page height below which lines
	// are signature candidates. The test is strict: b > h*zone.
	// Default: 0.91
	SignatureZone float64 `yaml:"signature_zone"`

	// LineSpacingMin and LineSpacingMax bound, inclusively, the paragraph
	// line spacing that confirms a header.
	// Default: 390 and 750
	LineSpacingMin float64 `yaml:"linespacing_min"`
	LineSpacingMax float64 `yaml:"linespacing_max"`

	// HeaderWarnMaxLen is the trimmed length under which an unconfirmed
	// header-zone line raises a warning.
	// Default: 55
	HeaderWarnMaxLen int `yaml:"header_warn_max_len"`

	// SignatureMaxLen is the longest trimmed text taken out as a
	// signature.
	// Default: 2
	SignatureMaxLen int `yaml:"signature_max_len"`

	// SignatureWarnMinLen and SignatureWarnMaxLen bound the trimmed
	// length, [min, max), of signature-zone lines that stay in the body
	// with a warning.
	// Default: 3 and 5
	SignatureWarnMinLen int `yaml:"signature_warn_min_len"`
	SignatureWarnMaxLen int `yaml:"signature_warn_max_len"`

	// CheckPageNumbers enables warnings for detected page numbers that do
	// not follow the previously detected one.
	// Default: true
	CheckPageNumbers bool `yaml:"check_page_numbers"`

	// Workers bounds how many pages are classified at once. Zero or less
	// means no limit.
	Workers int `yaml:"-"`
}

// DefaultConfig returns the thresholds calibrated on FineReader 10
// exports.
func DefaultConfig() Config {
	return Config{
		HeaderZone:          0.12,
		SignatureZone:       0.91,
		LineSpacingMin:      390,
		LineSpacingMax:      750,
		HeaderWarnMaxLen:    55,
		SignatureMaxLen:     2,
		SignatureWarnMinLen: 3,
		SignatureWarnMaxLen: 5,
		CheckPageNumbers:    true,
	}
}

// Validate reports thresholds that cannot describe a page.
func (c Config) Validate() error {
	var errs []error
	if c.HeaderZone < 0 || c.HeaderZone > 1 {
		errs = append(errs, fmt.Errorf("header_zone %v outside [0, 1]", c.HeaderZone))
	}
	if c.SignatureZone < 0 || c.SignatureZone > 1 {
		errs = append(errs, fmt.Errorf("signature_zone %v outside [0, 1]", c.SignatureZone))
	}
	if c.HeaderZone > c.SignatureZone {
		errs = append(errs, fmt.Errorf("header_zone %v above signature_zone %v", c.HeaderZone, c.SignatureZone))
	}
	if c.LineSpacingMin > c.LineSpacingMax {
		errs = append(errs, fmt.Errorf("linespacing_min %v greater than linespacing_max %v", c.LineSpacingMin, c.LineSpacingMax))
	}
	if c.SignatureWarnMinLen > c.SignatureWarnMaxLen {
		errs = append(errs, fmt.Errorf("signature_warn_min_len %d greater than signature_warn_max_len %d",
			c.SignatureWarnMinLen, c.SignatureWarnMaxLen))
	}
	if c.SignatureMaxLen < 0 || c.HeaderWarnMaxLen < 0 {
		errs = append(errs, errors.New("length thresholds must not be negative"))
	}
	return errors.Join(errs...)
}

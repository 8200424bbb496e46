package model

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMissingAttribute is wrapped by MalformedInputError when a required
// attribute is absent.
var ErrMissingAttribute = errors.New("missing attribute")

// MalformedInputError reports a node that lacks an attribute the
// pipeline cannot do without, or carries an unusable value.
type MalformedInputError struct {
	Path  string // node path, e.g. document/page[2]/block[4]
	Attr  string
	Value string
	Err   error
}

func (e *MalformedInputError) Error() string {
	if errors.Is(e.Err, ErrMissingAttribute) {
		return fmt.Sprintf("malformed input at %s: missing attribute %q", e.Path, e.Attr)
	}
	return fmt.Sprintf("malformed input at %s: attribute %q=%q: %v", e.Path, e.Attr, e.Value, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// RequiredAttr returns the named attribute or a MalformedInputError.
func RequiredAttr(attrs Attrs, name, path string) (string, error) {
	v, ok := attrs.Get(name)
	if !ok {
		return "", &MalformedInputError{Path: path, Attr: name, Err: ErrMissingAttribute}
	}
	return v, nil
}

// FloatAttr parses a required numeric attribute.
func FloatAttr(attrs Attrs, name, path string) (float64, error) {
	v, err := RequiredAttr(attrs, name, path)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &MalformedInputError{Path: path, Attr: name, Value: v, Err: err}
	}
	return f, nil
}

// OptionalFloatAttr parses a numeric attribute that may be absent. It
// returns nil when the attribute is missing.
func OptionalFloatAttr(attrs Attrs, name, path string) (*float64, error) {
	if !attrs.Has(name) {
		return nil, nil
	}
	f, err := FloatAttr(attrs, name, path)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

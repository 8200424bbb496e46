package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("xmltree: document has no root element")

// ParseOptions controls how a document is loaded.
type ParseOptions struct {
	// LowercaseNames folds element and attribute names to lower case.
	// This reproduces the HTML-mode parsing older tooling applied to
	// FineReader exports.
	LowercaseNames bool

	// KeepWhitespace keeps character data consisting only of whitespace.
	// By default such runs are dropped, since they are layout between
	// elements rather than content.
	KeepWhitespace bool
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, opts ParseOptions) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data), opts)
}

// Parse reads a whole XML document from r and returns its root element.
// Comments, processing instructions and directives are discarded.
func Parse(r io.Reader, opts ParseOptions) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		// RawToken keeps namespace prefixes as written so they survive
		// the round trip to the output files.
		token, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			node := &Node{
				Type:  ElementNode,
				Name:  qualifiedName(t.Name, opts.LowercaseNames),
				Attrs: make(Attrs, 0, len(t.Attr)),
			}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{
					Name:  qualifiedName(a.Name, opts.LowercaseNames),
					Value: a.Value,
				})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parsing XML: multiple root elements (%s)", node.Name)
				}
				root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("parsing XML: unexpected end element %s", t.Name.Local)
			}
			top := stack[len(stack)-1]
			if name := qualifiedName(t.Name, opts.LowercaseNames); name != top.Name {
				return nil, fmt.Errorf("parsing XML: element <%s> closed by </%s>", top.Name, name)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			data := string(t)
			if !opts.KeepWhitespace && strings.TrimSpace(data) == "" {
				continue
			}
			parent := stack[len(stack)-1]
			// The decoder may split character data around entities.
			if n := len(parent.Children); n > 0 && parent.Children[n-1].Type == TextNode {
				parent.Children[n-1].Data += data
				continue
			}
			parent.AppendChild(NewText(data))
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("parsing XML: unclosed element <%s>", stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

func qualifiedName(name xml.Name, lower bool) string {
	s := name.Local
	if name.Space != "" {
		s = name.Space + ":" + name.Local
	}
	if lower {
		s = strings.ToLower(s)
	}
	return s
}

package xmltree

import (
	"strings"
)

// NodeType distinguishes element nodes from character data.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

func (t NodeType) String() string {
	if t == TextNode {
		return "text"
	}
	return "element"
}

// Attr is a single attribute. Name keeps its source prefix, if any
// (e.g. "xmlns:xsi").
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Lookups ignore case because the
// FineReader schema and the tools around it disagree on casing
// (blockType vs blocktype).
type Attrs []Attr

// Get returns the value of the named attribute.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the named attribute is present.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the value of an existing attribute, keeping its position
// and spelling, or appends a new one.
func (a *Attrs) Set(name, value string) {
	for i, attr := range *a {
		if strings.EqualFold(attr.Name, name) {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Delete removes the named attribute. Deleting an absent attribute is a
// no-op.
func (a *Attrs) Delete(name string) {
	out := (*a)[:0]
	for _, attr := range *a {
		if !strings.EqualFold(attr.Name, name) {
			out = append(out, attr)
		}
	}
	*a = out
}

// Clone returns a copy that shares no storage with a.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// Node is an element or a run of character data.
type Node struct {
	Type     NodeType
	Name     string // qualified element name, empty for text nodes
	Attrs    Attrs
	Data     string // character data, text nodes only
	Children []*Node
}

// NewElement creates an element node with a copy of attrs.
func NewElement(name string, attrs Attrs) *Node {
	return &Node{Type: ElementNode, Name: name, Attrs: attrs.Clone()}
}

// NewText creates a character data node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Local returns the element name without its namespace prefix.
func (n *Node) Local() string {
	if i := strings.IndexByte(n.Name, ':'); i >= 0 {
		return n.Name[i+1:]
	}
	return n.Name
}

// Is reports whether n is an element with the given local name,
// ignoring case.
func (n *Node) Is(name string) bool {
	return n != nil && n.Type == ElementNode && strings.EqualFold(n.Local(), name)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.Attrs.Get(name)
}

// AppendChild adds child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Elements returns the element children of n in document order.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant element with the given local name,
// searching depth first in document order.
func (n *Node) Find(name string) *Node {
	for _, c := range n.Children {
		if c.Is(name) {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant element with the given local name in
// document order. Matches nested inside a match are included.
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.Is(name) {
			out = append(out, c)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	for _, c := range n.Children {
		fn(c)
		c.walk(fn)
	}
}

// Text returns the concatenated character data of n and its descendants.
func (n *Node) Text() string {
	if n.Type == TextNode {
		return n.Data
	}
	var sb strings.Builder
	n.walk(func(c *Node) {
		if c.Type == TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// OwnText returns only the character data directly under n.
func (n *Node) OwnText() string {
	var sb strings.Builder
	for _, c := range n.Children {
		if c.Type == TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	out := &Node{Type: n.Type, Name: n.Name, Attrs: n.Attrs.Clone(), Data: n.Data}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// hasText reports whether any direct child is character data.
func (n *Node) hasText() bool {
	for _, c := range n.Children {
		if c.Type == TextNode {
			return true
		}
	}
	return false
}

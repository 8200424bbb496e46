package xmltree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Header is the XML declaration written before every document.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#x9;",
		"\n", "&#xA;",
		"\r", "&#xD;",
	)
)

// Encode writes root, preceded by the XML declaration, to w. Each nesting
// level is prefixed with indent; an empty indent writes everything on
// one line.
func Encode(w io.Writer, root *Node, indent string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	e := encoder{w: bw, indent: indent}
	e.node(root, 0, false)
	if indent != "" {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String renders root as a document. It is mostly useful in tests.
func String(root *Node, indent string) string {
	var sb strings.Builder
	_ = Encode(&sb, root, indent)
	return sb.String()
}

// WriteFile writes root to path. The document is first written to a
// temporary file in the same directory and renamed into place, so a
// failed write never leaves a truncated output behind.
func WriteFile(path string, root *Node, indent string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, root, indent); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

type encoder struct {
	w      *bufio.Writer
	indent string
}

// node writes n at the given depth. inline is set inside elements with
// mixed content, where no layout whitespace may be added.
func (e *encoder) node(n *Node, depth int, inline bool) {
	if n.Type == TextNode {
		e.w.WriteString(textEscaper.Replace(n.Data))
		return
	}

	if !inline && depth > 0 {
		e.newline(depth)
	}

	e.w.WriteByte('<')
	e.w.WriteString(n.Name)
	for _, a := range n.Attrs {
		e.w.WriteByte(' ')
		e.w.WriteString(a.Name)
		e.w.WriteString(`="`)
		e.w.WriteString(attrEscaper.Replace(a.Value))
		e.w.WriteByte('"')
	}
	if len(n.Children) == 0 {
		e.w.WriteString("/>")
		return
	}
	e.w.WriteByte('>')

	mixed := inline || n.hasText()
	for _, c := range n.Children {
		e.node(c, depth+1, mixed)
	}

	if !mixed {
		e.newline(depth)
	}
	e.w.WriteString("</")
	e.w.WriteString(n.Name)
	e.w.WriteByte('>')
}

func (e *encoder) newline(depth int) {
	if e.indent == "" {
		return
	}
	e.w.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.w.WriteString(e.indent)
	}
}

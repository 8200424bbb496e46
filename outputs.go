package ocrsift

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/ocrsift/xmltree"
)

// OutputPaths names the files a run produces.
type OutputPaths struct {
	// Body receives the flattened main document.
	Body string

	// Guard receives the extracted headers and signatures.
	Guard string

	// Text is reserved for a plain-text rendition. It is computed but
	// never written.
	Text string
}

// OutputPathsFor derives output paths. The base is output when given,
// otherwise input; in both cases it is cut at the first dot of the file
// name. Without an explicit output the body is written to <base>_out.xml
// so the input is never overwritten.
//
// Example:
//
//	OutputPathsFor("in/scan.v2.xml", "")   // in/scan_out.xml, in/scan_guard.xml, in/scan.txt
//	OutputPathsFor("in/scan.xml", "out/a") // out/a.xml, out/a_guard.xml, out/a.txt
func OutputPathsFor(input, output string) OutputPaths {
	source, bodySuffix := output, ".xml"
	if source == "" {
		source, bodySuffix = input, "_out.xml"
	}
	base := basePath(source)
	return OutputPaths{
		Body:  base + bodySuffix,
		Guard: base + "_guard.xml",
		Text:  base + ".txt",
	}
}

// basePath strips everything from the first dot of the file name.
func basePath(path string) string {
	dir, file := filepath.Split(path)
	if i := strings.IndexByte(file, '.'); i >= 0 {
		file = file[:i]
	}
	return dir + file
}

// Write serializes the body and guard documents. Each file is written to
// a temporary sibling first, so a failed run leaves no partial output.
func (r *Result) Write(paths OutputPaths, indent string) error {
	if err := xmltree.WriteFile(paths.Body, r.Body, indent); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}
	if err := xmltree.WriteFile(paths.Guard, r.GuardNode(), indent); err != nil {
		return fmt.Errorf("writing guard: %w", err)
	}
	return nil
}

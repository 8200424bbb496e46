// Command ocrsift cleans FineReader XML exports: it moves running headers
// and signature marks to a guard file and flattens the body into page and
// line break markers.
package main

func main() {
	Execute()
}

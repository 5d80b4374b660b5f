// Package ex2rst converts documented example scripts into reStructuredText.
//
// Example scripts carry their narrative in triple-quoted documentation
// blocks between runs of ordinary code. A line-oriented state machine
// discards the leading file header, extracts the documentation blocks as
// prose, and re-emits the code between them as two-space-indented literal
// blocks behind :: fences. Image directives inside the prose gain width
// and link-target annotations so the generated pages link to rendered
// figures.
//
// Example:
//
//	reader := strings.NewReader("\"\"\"Summary line.\"\"\"\nx = 1\n")
//	err := ex2rst.Extract(ex2rst.ExtractRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// ConvertFile wraps Extract with the surrounding document scaffolding:
// a generated-file notice, a cross-reference anchor, and an optional
// admonition pointing readers at the downloadable source. The ex2rst
// command under cmd/ex2rst drives ConvertFile over files and directories.
package ex2rst

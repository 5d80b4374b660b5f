package ex2rst

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExtractRequest configures Extract.
type ExtractRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Extract reads an example script from Reader and writes its
// reStructuredText rendition to Writer. The scan is line oriented and
// single pass; state never survives a call, so one request per input file
// is the expected usage. CRLF line endings are normalized to LF.
func Extract(req ExtractRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("extract: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("extract: writer is nil")
	}
	t := newTransducer(newConfig(req.Options))
	reader := bufio.NewReader(req.Reader)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			t.feed(trimCRLF(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("extract: read: %w", err)
		}
	}
	t.finish()
	if _, err := io.WriteString(req.Writer, t.result()); err != nil {
		return fmt.Errorf("extract: write: %w", err)
	}
	return nil
}

func trimCRLF(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}

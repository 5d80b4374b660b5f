package ex2rst

import (
	"strings"
	"testing"
)

func extractString(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	var out strings.Builder
	err := Extract(ExtractRequest{
		Reader:  strings.NewReader(input),
		Writer:  &out,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return out.String()
}

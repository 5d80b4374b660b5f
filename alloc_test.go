package ex2rst

import (
	"bytes"
	"os"
	"testing"
)

func TestExtractAllocations(t *testing.T) {
	src, err := os.ReadFile("testdata/basic.py")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	allocs := testing.AllocsPerRun(100, func() {
		var out bytes.Buffer
		_ = Extract(ExtractRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
		})
	})
	if allocs > 2000 {
		t.Fatalf("too many allocations per Extract: got %.2f", allocs)
	}
}

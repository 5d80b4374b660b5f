package ex2rst

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestExtractSampleParity runs every example script under testdata through
// Extract and compares the result against its checked-in golden rendition.
// Regenerate the goldens with cmd/gen-golden after intentional changes.
func TestExtractSampleParity(t *testing.T) {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".py") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk testdata: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no example scripts found under %s", root)
	}
	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			goldenPath := strings.TrimSuffix(path, ".py") + ".rst.golden"
			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read golden %s: %v", goldenPath, err)
			}
			var out strings.Builder
			err = Extract(ExtractRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
			})
			if err != nil {
				t.Fatalf("extract %s: %v", path, err)
			}
			if diff := cmp.Diff(string(want), out.String()); diff != "" {
				t.Fatalf("parity mismatch %s (-want +got):\n%s", path, diff)
			}
		})
	}
}

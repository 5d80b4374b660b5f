package ex2rst

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/indent"
)

const generatedNotice = ".. AUTO-GENERATED FILE -- DO NOT EDIT!\n\n"

// ConvertFileRequest configures ConvertFile.
type ConvertFileRequest struct {
	// Path is the example script to convert.
	Path string
	// OutDir receives the generated reST file. It is created if missing.
	OutDir string
	// Project names the source distribution in the download admonition.
	Project string
	// OmitSourceRef drops the download admonition from the output.
	OmitSourceRef bool
	// Options are passed through to Extract.
	Options []Option
}

// ConvertFile converts one example script into a reST document: the
// generated-file notice, a cross-reference anchor derived from the file's
// base name, the extracted markup, and, unless suppressed, an admonition
// pointing at the downloadable source. The destination is the input's base
// name with its extension replaced by .rst, placed in OutDir. ConvertFile
// returns the path of the written file.
//
// Input that fails ValidateSource is reported through the warning func and
// still converted best effort.
func ConvertFile(req ConvertFileRequest) (string, error) {
	if req.Path == "" {
		return "", fmt.Errorf("convert: path is required")
	}
	if req.OutDir == "" {
		return "", fmt.Errorf("convert: output directory is required")
	}
	src, err := os.ReadFile(req.Path)
	if err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	cfg := newConfig(req.Options)
	if err := ValidateSource(src); err != nil {
		cfg.warn(Warning{Message: fmt.Sprintf("%v; converting anyway", err)})
	}
	base := strings.TrimSuffix(filepath.Base(req.Path), filepath.Ext(req.Path))
	var out strings.Builder
	out.WriteString(generatedNotice)
	fmt.Fprintf(&out, ".. _example_%s:\n\n", base)
	if err := Extract(ExtractRequest{
		Reader:  bytes.NewReader(src),
		Writer:  &out,
		Options: req.Options,
	}); err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	if !req.OmitSourceRef {
		out.WriteString(sourceRef(req.Path, req.Project))
	}
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	dst := filepath.Join(req.OutDir, base+".rst")
	if err := os.WriteFile(dst, []byte(out.String()), 0o644); err != nil {
		return "", fmt.Errorf("convert: %w", err)
	}
	return dst, nil
}

// sourceRef builds the download admonition. path is reproduced as given so
// the :download: role resolves relative to the generated document the same
// way the input was named on the command line.
func sourceRef(path, project string) string {
	body := fmt.Sprintf("You can download :download:`the full source code of this example <%s>`. "+
		"This same script is also included in the %s source distribution under the "+
		":file:`doc/examples/` directory.", path, project)
	return "\n.. admonition:: Example source code\n\n" + indent.String(body+"\n", 3)
}

package ex2rst

import (
	"fmt"
	"regexp"
	"strings"
)

var imageDirective = regexp.MustCompile(`^([ \t]*)\.\. image::[ \t]*(.*)$`)

// wildcardExt is the placeholder extension used by example scripts for
// figures whose rendered format is decided at build time.
const wildcardExt = ".*"

// ImageRules controls how image directives in documentation prose are
// annotated. The zero value annotates nothing useful; start from
// DefaultImageRules and adjust.
type ImageRules struct {
	// Width is the value of the emitted :width: annotation.
	Width int
	// SourceDir is the path prefix figures use in the example sources.
	SourceDir string
	// TargetDir replaces SourceDir in the emitted :target: link.
	TargetDir string
	// Ext replaces the wildcard extension placeholder in the link target.
	Ext string
}

// DefaultImageRules returns the standard annotation rules: a 500 pixel
// width, figures under fig/ linked from ../_images/, and .png as the
// concrete extension behind the wildcard placeholder.
func DefaultImageRules() ImageRules {
	return ImageRules{
		Width:     500,
		SourceDir: "fig/",
		TargetDir: "../_images/",
		Ext:       ".png",
	}
}

// AutoImage annotates an image directive with width and link-target lines
// using DefaultImageRules. Lines that do not hold an image directive,
// including already-emitted :width: and :target: annotation lines, are
// returned unchanged.
func AutoImage(line string) string {
	if unit, ok := DefaultImageRules().rewrite(strings.TrimRight(line, " \t\n")); ok {
		return unit
	}
	return line
}

// rewrite expands a directive line into its annotated form: the directive
// itself, width and target lines one indent level deeper, and a trailing
// blank line. line must already be right-trimmed.
func (r ImageRules) rewrite(line string) (string, bool) {
	m := imageDirective.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	path := m[2]
	if path == "" {
		return "", false
	}
	target := path
	if strings.HasSuffix(target, wildcardExt) {
		target = strings.TrimSuffix(target, wildcardExt) + r.Ext
	}
	if r.SourceDir != "" && strings.HasPrefix(target, r.SourceDir) {
		target = r.TargetDir + target[len(r.SourceDir):]
	}
	lead := m[1] + "   "
	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s:width: %d\n", lead, r.Width)
	fmt.Fprintf(&b, "%s:target: %s\n", lead, target)
	b.WriteByte('\n')
	return b.String(), true
}

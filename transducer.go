package ex2rst

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

type scanState uint8

const (
	// stateHeader drops lines until the first documentation opener.
	stateHeader scanState = iota
	// stateCode emits lines as indented literal-block content.
	stateCode
	// stateDoc emits lines as documentation prose.
	stateDoc
)

// Warning describes a tolerated irregularity found while scanning input.
// Warnings never abort a scan and never change the produced output.
type Warning struct {
	// Line is the 1-based input line the warning refers to, 0 when the
	// warning has no single line.
	Line    int
	Message string
}

// transducer is the line state machine behind Extract. It classifies each
// input line as header, documentation, or code, and accumulates the
// reStructuredText rendition.
//
// Two pieces of state cross region boundaries. fencePending records that
// the next code line must be preceded by a literal-block fence; it is set
// when a documentation block closes and consumed by the first code line
// after it. indent is the indentation baseline: the leading whitespace
// width of the most recent line that followed a blank line, stripped from
// documentation body lines so indented blocks come out flush. The baseline
// is deliberately captured only after blank lines, which is what keeps
// docstrings attached to declarations classified as code.
type transducer struct {
	cfg config

	state        scanState
	fencePending bool
	lastBlank    bool
	indent       int
	line         int
	openLine     int
	out          strings.Builder
}

func newTransducer(cfg config) *transducer {
	t := &transducer{cfg: cfg, state: stateHeader, fencePending: true}
	if !cfg.headerDiscard {
		t.state = stateCode
	}
	return t
}

// feed consumes one input line including its trailing newline.
func (t *transducer) feed(line string) {
	t.line++
	if t.state == stateHeader {
		if _, ok := openerAt(line); !ok {
			return
		}
		// The line that ends the header is itself the first opener;
		// it falls through to normal classification.
		t.state = stateCode
	}
	if t.state == stateDoc {
		t.docLine(line)
		return
	}
	clean := cutComment(line)
	if t.lastBlank {
		stripped := strings.TrimLeft(clean, " \t")
		t.indent = len(clean) - len(stripped)
		clean = stripped
	}
	clean = strings.TrimRight(clean, " \t\n")
	t.lastBlank = line == "\n"
	if rest, ok := openerAt(clean); ok {
		t.openDoc(rest)
		return
	}
	t.codeLine(line)
}

// openDoc starts a documentation block. rest is what follows the opener on
// the normalized line; when it carries its own closer the block is a
// self-contained one-liner and the scanner stays in code state.
func (t *transducer) openDoc(rest string) {
	if t.out.Len() > 0 {
		t.out.WriteByte('\n')
	}
	if body, ok := closerAt(rest); ok {
		t.fencePending = true
		if body != "" {
			t.writeDocLine(body)
		}
		return
	}
	t.state = stateDoc
	t.openLine = t.line
	if rest != "" {
		t.writeDocLine(rest)
	}
}

func (t *transducer) docLine(line string) {
	t.lastBlank = false
	stripped := strings.TrimRight(line, " \t\n")
	if content, ok := closerAt(stripped); ok {
		t.closeDoc(content)
		return
	}
	// Body line: strip the indentation baseline, but never more than the
	// line's actual leading whitespace, and never content. Lines that end
	// up empty still count as paragraph breaks.
	n := t.indent
	if lead := leadingSpaceWidth(line); lead < n {
		n = lead
	}
	t.writeDocLine(line[n:])
}

func (t *transducer) closeDoc(content string) {
	t.state = stateCode
	t.fencePending = true
	t.indent = 0
	content = strings.TrimRight(strings.TrimSpace(content), `"'`)
	if content != "" {
		t.writeDocLine(content)
	}
}

func (t *transducer) codeLine(line string) {
	if t.fencePending {
		t.fencePending = false
		if t.out.Len() > 0 {
			t.out.WriteByte('\n')
		}
		t.out.WriteString("::\n")
	}
	t.out.WriteString("  ")
	t.out.WriteString(line)
}

// writeDocLine emits one documentation line: image directives expand to
// their annotated form, everything else is right-trimmed, optionally
// re-wrapped, and terminated with a single newline.
func (t *transducer) writeDocLine(content string) {
	content = strings.TrimRight(content, " \t\n")
	if unit, ok := t.cfg.rules.rewrite(content); ok {
		t.out.WriteString(unit)
		return
	}
	if t.cfg.wrapLimit > 0 {
		content = wordwrap.String(content, t.cfg.wrapLimit)
	}
	t.out.WriteString(content)
	t.out.WriteByte('\n')
}

// finish ends the scan. A block that is still open is implicitly closed,
// keeping the accumulated output, and reported through the warning func.
func (t *transducer) finish() {
	if t.state == stateDoc {
		t.cfg.warn(Warning{Line: t.openLine, Message: "documentation block is never closed"})
	}
}

func (t *transducer) result() string {
	return t.out.String()
}

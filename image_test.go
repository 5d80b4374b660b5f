package ex2rst

import "testing"

func TestAutoImageExpandsWildcardDirective(t *testing.T) {
	got := AutoImage(".. image:: fig/plot.*")
	want := ".. image:: fig/plot.*\n   :width: 500\n   :target: ../_images/plot.png\n\n"
	if got != want {
		t.Fatalf("unexpected expansion\n got: %q\nwant: %q", got, want)
	}
}

func TestAutoImageKeepsLiteralExtension(t *testing.T) {
	got := AutoImage(".. image:: fig/plot.jpg")
	want := ".. image:: fig/plot.jpg\n   :width: 500\n   :target: ../_images/plot.jpg\n\n"
	if got != want {
		t.Fatalf("unexpected expansion\n got: %q\nwant: %q", got, want)
	}
}

func TestAutoImageIndentation(t *testing.T) {
	got := AutoImage("   .. image:: fig/x.*")
	want := "   .. image:: fig/x.*\n      :width: 500\n      :target: ../_images/x.png\n\n"
	if got != want {
		t.Fatalf("unexpected expansion\n got: %q\nwant: %q", got, want)
	}
}

func TestAutoImageLeavesAnnotationLines(t *testing.T) {
	for _, line := range []string{
		"   :width: 500",
		"   :target: ../_images/plot.png",
	} {
		if got := AutoImage(line); got != line {
			t.Fatalf("annotation line changed: %q -> %q", line, got)
		}
	}
}

func TestAutoImageLeavesProse(t *testing.T) {
	line := "The image:: syntax is discussed below."
	if got := AutoImage(line); got != line {
		t.Fatalf("prose line changed: %q -> %q", line, got)
	}
}

func TestAutoImageEmptyPathUnchanged(t *testing.T) {
	line := ".. image::"
	if got := AutoImage(line); got != line {
		t.Fatalf("empty directive changed: %q -> %q", line, got)
	}
}

func TestImageRulesCustom(t *testing.T) {
	input := `""".. image:: img/a.*"""
`
	got := extractString(t, input, WithImageRules(ImageRules{
		Width:     320,
		SourceDir: "img/",
		TargetDir: "static/",
		Ext:       ".svg",
	}))
	want := ".. image:: img/a.*\n   :width: 320\n   :target: static/a.svg\n\n"
	if got != want {
		t.Fatalf("unexpected output\n got: %q\nwant: %q", got, want)
	}
}

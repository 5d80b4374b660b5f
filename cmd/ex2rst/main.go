package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/ex2rst"
	"pkt.systems/version"
)

const defaultStatusWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/ex2rst")
}

func main() {
	var (
		outDir      string
		excludes    []string
		project     string
		noSourceRef bool
		wrapLimit   int
		verbose     bool
	)

	flags := pflag.NewFlagSet("ex2rst", pflag.ExitOnError)
	flags.StringVarP(&outDir, "outdir", "o", "", "Target directory for generated reST files (required)")
	flags.StringArrayVarP(&excludes, "exclude", "x", nil, "Input path to skip (repeatable)")
	flags.StringVarP(&project, "project", "p", "", "Project name used in the source-reference admonition")
	flags.BoolVar(&noSourceRef, "no-sourceref", false, "Do not append the source-reference admonition")
	flags.IntVar(&wrapLimit, "wrap", 0, "Re-wrap documentation prose at this column (0 keeps original line breaks)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Report every converted file")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: ex2rst -o DIR [flags] <file|directory> [...]\n")
		fmt.Fprintln(os.Stderr, "\nDirectory inputs are expanded to the example scripts they contain.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if strings.TrimSpace(outDir) == "" {
		fmt.Fprintln(os.Stderr, "an output directory is required (-o/--outdir)")
		flags.Usage()
		os.Exit(2)
	}
	args := flags.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "at least one input file or directory is required")
		flags.Usage()
		os.Exit(2)
	}

	inputs, err := expandInputs(args, excludes, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "expand inputs: %v\n", err)
		os.Exit(1)
	}

	opts := convertOptions{
		outDir:      normalizePath(outDir),
		project:     project,
		noSourceRef: noSourceRef,
		wrapLimit:   wrapLimit,
		verbose:     verbose,
	}
	if failed := convertAll(inputs, opts, os.Stderr); failed > 0 {
		os.Exit(1)
	}
}

type convertOptions struct {
	outDir      string
	project     string
	noSourceRef bool
	wrapLimit   int
	verbose     bool
}

// convertAll converts every input in order, reporting failures without
// aborting the run, and returns the number of failed inputs.
func convertAll(inputs []string, opts convertOptions, stderr io.Writer) int {
	failed := 0
	for _, path := range inputs {
		path := path
		extractOpts := []ex2rst.Option{
			ex2rst.WithWarningFunc(func(w ex2rst.Warning) {
				if w.Line > 0 {
					fmt.Fprintf(stderr, "warning: %s:%d: %s\n", path, w.Line, w.Message)
					return
				}
				fmt.Fprintf(stderr, "warning: %s: %s\n", path, w.Message)
			}),
		}
		if opts.wrapLimit > 0 {
			extractOpts = append(extractOpts, ex2rst.WithProseWrap(opts.wrapLimit))
		}
		dst, err := ex2rst.ConvertFile(ex2rst.ConvertFileRequest{
			Path:          path,
			OutDir:        opts.outDir,
			Project:       opts.project,
			OmitSourceRef: opts.noSourceRef,
			Options:       extractOpts,
		})
		if err != nil {
			fmt.Fprintf(stderr, "convert %s: %v\n", path, err)
			failed++
			continue
		}
		if opts.verbose {
			fmt.Fprintf(stderr, "wrote %s\n", statusPath(dst, stderr))
		}
	}
	return failed
}

// expandInputs turns file and directory arguments into a sorted list of
// unique input files. Directories contribute the example scripts directly
// inside them. Excluded and duplicate paths are skipped with a notice.
func expandInputs(args, excludes []string, stderr io.Writer) ([]string, error) {
	excluded := make(map[string]bool, len(excludes))
	for _, path := range excludes {
		excluded[path] = true
	}
	seen := make(map[string]bool)
	var inputs []string
	add := func(path string) {
		if excluded[path] {
			fmt.Fprintf(stderr, "skipping excluded %s\n", path)
			return
		}
		if seen[path] {
			fmt.Fprintf(stderr, "skipping duplicate %s\n", path)
			return
		}
		seen[path] = true
		inputs = append(inputs, path)
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			matches, err := filepath.Glob(filepath.Join(arg, "*.py"))
			if err != nil {
				return nil, fmt.Errorf("glob %s: %w", arg, err)
			}
			for _, match := range matches {
				add(match)
			}
			continue
		}
		// Non-directories, including missing paths, go through as given;
		// conversion reports unreadable files per input.
		add(arg)
	}
	sort.Strings(inputs)
	return inputs, nil
}

// statusPath shortens a path for one-line status output when writing to a
// terminal; pipes and files get the full path.
func statusPath(path string, w io.Writer) string {
	if !isTerminal(w) {
		return path
	}
	limit := terminalWidth(w, defaultStatusWidth) - len("wrote ")
	return truncateWithEllipsis(path, limit)
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

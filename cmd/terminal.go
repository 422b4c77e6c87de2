package cmd

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Swapped in tests.
var (
	termIsTerminal = term.IsTerminal
	termGetSize    = term.GetSize
)

// isTerminal reports whether w is a terminal. Buffers and pipes are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termIsTerminal(int(f.Fd()))
}

// resolveWidth maps the configured width to columns: 0 stays unlimited and a
// negative value means the terminal width.
func resolveWidth(configured int) int {
	if configured >= 0 {
		return configured
	}
	return detectTerminalWidth()
}

// detectTerminalWidth probes stdout, stderr, and stdin, then falls back to
// $COLUMNS. It returns 0 (unlimited) when nothing answers.
func detectTerminalWidth() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, _, err := termGetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

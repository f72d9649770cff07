// Package output delivers the rendered report and shows scan progress.
//
// Progress is drawn on a single terminal line that is redrawn in place and
// erased when the scan finishes. Nothing is drawn when the writer is not a
// terminal, so redirected output stays clean.
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
)

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// maxStatusWidth bounds a status line so it never wraps on narrow terminals.
const maxStatusWidth = 72

// Status is a one-line progress indicator. Each Update advances a spinner
// frame and rewrites the line with a carriage return; there is no background
// goroutine, so it only moves when the caller makes progress.
//
// Example: /  Checking Safari.app (12)
type Status struct {
	writer  io.Writer
	tty     bool
	chars   []string
	frame   int
	count   int
	lastLen int
}

// NewStatus creates a status line on w. On a non-TTY writer every method is a
// no-op.
func NewStatus(w io.Writer) *Status {
	return &Status{
		writer: w,
		tty:    writerIsTTY(w),
		chars:  []string{"|", "/", "-", "\\"},
	}
}

// Update redraws the line with message and bumps the item counter.
func (s *Status) Update(message string) {
	s.count++
	if !s.tty {
		return
	}

	line := truncate(fmt.Sprintf("%s  %s (%d)", s.chars[s.frame], message, s.count), maxStatusWidth)
	s.frame = (s.frame + 1) % len(s.chars)

	pad := ""
	if s.lastLen > len(line) {
		pad = strings.Repeat(" ", s.lastLen-len(line))
	}
	fmt.Fprintf(s.writer, "\r%s%s", line, pad)
	s.lastLen = len(line)
}

// Clear erases the status line, leaving the cursor at column zero.
func (s *Status) Clear() {
	if !s.tty || s.lastLen == 0 {
		return
	}
	fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", s.lastLen))
	s.lastLen = 0
}

// truncate truncates a string to at most maxLen bytes, adding "..." if
// truncated. The cut always falls on a rune boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	cut, suffix := maxLen-3, "..."
	if maxLen <= 3 {
		cut, suffix = maxLen, ""
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + suffix
}

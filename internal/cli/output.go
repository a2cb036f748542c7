// Package cli provides terminal output helpers for the haru commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled overrides terminal detection.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGreen + s + colorReset
}

// Cyan returns s wrapped in cyan ANSI codes if colors are enabled.
func Cyan(s string) string {
	if !colorEnabled {
		return s
	}
	return colorCyan + s + colorReset
}

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGray + s + colorReset
}

// DefaultMaxTextWidth caps the text column in list output.
const DefaultMaxTextWidth = 60

// Table formats columnar output with automatic column width calculation.
// Widths are computed on visible characters, so colored cells align.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int
}

func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth caps a column's visible width; longer cells are truncated
// with an ellipsis.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(t.colWidths)-1 {
				padding := t.colWidths[i] - visibleWidth(col)
				parts = append(parts, col+strings.Repeat(" ", padding))
			} else {
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate cuts s to maxWidth visible characters, appending "..." within
// the limit. ANSI escape codes are preserved and a reset is appended when
// colored content was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit := maxWidth - len(ellipsis)
	withEllipsis := true
	if limit < 0 {
		limit = maxWidth
		withEllipsis = false
	}

	var b strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			hasAnsi = true
			b.WriteRune(r)
			continue
		}
		if inEscape {
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if visible >= limit {
			break
		}
		b.WriteRune(r)
		visible++
	}

	if withEllipsis {
		b.WriteString(ellipsis)
	}
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}
	return width
}

package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// a mapping from StyleKey to lipgloss.Style.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with a single Style.Render() call per run. Keys missing from
// the map render as plain text.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	chunk := make([]rune, 0, b.W)

	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.Cells[y]

		runStyle := row[0].Style
		chunk = chunk[:0]
		flush := func() {
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
			chunk = chunk[:0]
		}

		for _, c := range row {
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			chunk = append(chunk, c.Ch)
		}
		flush()

		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// String renders the buffer without any styling, trimming trailing
// spaces from each row.
func (b *Buffer) String() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = strings.TrimRight(string(rs), " ")
	}
	return strings.Join(lines, "\n")
}

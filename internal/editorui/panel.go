package editorui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// panelLines renders the tool list and key help.
func (m Model) panelLines(width int) []string {
	lines := []string{
		panelTitleStyle.Render(" TOOLS"),
		panelDimStyle.Render(" " + strings.Repeat("─", max(0, width-2))),
	}
	for _, b := range m.palette {
		name := b.Name
		if b.Name == "N-gon" {
			name = fmt.Sprintf("%s (%d)", b.Name, b.Sides())
		}
		if b.Active() {
			lines = append(lines, panelActiveStyle.Render(fmt.Sprintf(" [%s] %-*s", b.Key, max(0, width-6), name)))
			continue
		}
		lines = append(lines, panelKeyStyle.Render(fmt.Sprintf(" [%s]", b.Key))+panelTextStyle.Render(" "+name))
	}
	lines = append(lines,
		"",
		panelTitleStyle.Render(" KEYS"),
		panelDimStyle.Render(" "+strings.Repeat("─", max(0, width-2))),
		panelTextStyle.Render(" [del] delete selected"),
		panelTextStyle.Render(" [esc] clear selection"),
		panelTextStyle.Render(" [p] write PNG"),
		panelTextStyle.Render(" [y] copy as text"),
		panelTextStyle.Render(" [G] toggle grid"),
		panelTextStyle.Render(" [q] quit"),
	)
	return lines
}

// footerText summarises the active tool, pointer and selection.
func (m Model) footerText() string {
	tool := "none"
	if b := m.activeBinding(); b != nil {
		tool = b.Name
	}
	sel := "none"
	if ids := m.canvas.SelectedFigures(); len(ids) == 1 {
		sel = m.canvas.Describe(ids[0])
	} else if len(ids) > 1 {
		sel = fmt.Sprintf("%d figures", len(ids))
	}
	return fmt.Sprintf(" %s │ figures %d │ sel: %s", tool, len(m.canvas.Figures()), sel)
}

// sidesModal renders the n-gon sides prompt.
func (m Model) sidesModal() string {
	return strings.Join([]string{
		modalTitleStyle.Render("N-GON SIDES"),
		"",
		"  " + m.sidesInput.View(),
		"",
		modalHintStyle.Render("[enter] apply  [esc] cancel"),
	}, "\n")
}

func styledStatus(m Model) string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render(" " + m.status + " ")
	}
	return footerStyle.Render(" " + m.status + " ")
}

// withStatus right-aligns the status message in the footer text.
func withStatus(left, status string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + status
}

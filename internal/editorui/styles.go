package editorui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorBG = c("#080e0b")
	panelBG = c("#1a2a20")

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelActiveStyle = lipgloss.NewStyle().
				Foreground(c("#080e0b")).
				Background(c("#00ffc8")).
				Bold(true)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(colorBG)

	footerStyle = lipgloss.NewStyle().
			Foreground(c("#666666")).
			Background(c("#0a1510"))

	errorStyle = lipgloss.NewStyle().
			Foreground(c("#ff5555")).
			Background(c("#0a1510"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(c("#0a1510")).
			Width(36).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(c("#0a1510")).
			Bold(true)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(c("#0a1510")).
			Italic(true)
)

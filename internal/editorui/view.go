package editorui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/figdraw/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get("canvas")
	toolsRegion := layout.Get("tools")
	sep := layout.Get("separator").Rect

	layers := []*lipgloss.Layer{
		tealayout.FillLayer(layout.Get("footer"), footerStyle, "footer-bg", 0),
		tealayout.PanelLayer(m.panelLines(toolsRegion.Rect.Dx()), toolsRegion, panelLineStyle, 1),
		tealayout.VerticalSeparator(sep.Min.X, sep.Min.Y, sep.Dy(), sepStyle),
	}

	if r := canvasRegion.Rect; !r.Empty() {
		layers = append(layers,
			lipgloss.NewLayer(m.term.Render()).X(r.Min.X).Y(r.Min.Y).Z(0).ID("canvas"))
	}

	footer := withStatus(footerStyle.Render(m.footerText()), styledStatus(m), m.Width)
	layers = append(layers, tealayout.FooterLayer(footer, m.Width, m.Height-footerH, footerStyle))

	if m.sidesOpen {
		layers = append(layers, tealayout.ModalLayer(m.sidesModal(), m.Width, m.Height, modalStyle))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

package editorui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/figdraw/pkg/surface"
	"github.com/wesen/figdraw/pkg/tealayout"
	"github.com/wesen/figdraw/pkg/tools"
)

// layout splits the screen into tool panel, canvas and footer.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		BottomFixed("footer", footerH).
		LeftFixed("tools", panelWidth).
		LeftFixed("separator", 1).
		Remaining("canvas").
		Build()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		cv := m.layout().Get("canvas").Rect
		if m.term.Resize(cv.Dx(), cv.Dy()) {
			m.redraw = true
		}

	case tea.KeyMsg:
		if m.sidesOpen {
			m, cmd = m.handleSidesKeys(msg)
		} else {
			m, cmd = m.handleKeys(msg)
		}

	case tea.MouseMsg:
		m = m.handleMouse(msg, m.layout().Get("canvas").Rect)

	case scriptMsg:
		if msg.Err != nil {
			m.check(fmt.Errorf("watch %s: %w", msg.Path, msg.Err))
		} else {
			m.reload()
		}
		cmd = waitForScript(m.events)
	}

	m.flush()
	return m, cmd
}

// flush repaints whatever the canvas reported as damaged.
func (m *Model) flush() {
	damage, ok := m.canvas.TakeDamage()
	if m.redraw {
		m.term.RedrawAll(m.canvas)
		m.redraw = false
		return
	}
	if ok {
		m.term.Redraw(m.canvas, damage)
	}
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.canvas.ClearSelected()
		m.status = ""

	case "delete", "backspace", "d":
		sel := m.canvas.SelectedFigures()
		for _, id := range sel {
			// cascades may already have removed a dependent line
			if m.canvas.Figure(id) != nil {
				m.check(m.canvas.RemoveFigure(id))
			}
		}
		if len(sel) > 0 {
			m.setStatus("removed %d figure(s)", len(sel))
		}

	case "p":
		m.snapshot()

	case "y":
		m.flush()
		if m.check(m.copyText(m.term.String())) {
			m.setStatus("copied canvas text to clipboard")
		}

	case "G":
		if m.term.GridX > 0 {
			m.term.GridX, m.term.GridY = 0, 0
		} else {
			m.term.GridX, m.term.GridY = 5, 3
		}
		m.redraw = true

	default:
		for _, b := range m.palette {
			if b.Key == key {
				m.check(b.Activate())
				if b.Name == "N-gon" {
					return m.openSides(b)
				}
				break
			}
		}
	}
	return m, nil
}

// openSides opens the modal asking for the n-gon vertex count.
func (m Model) openSides(b *tools.Binding) (Model, tea.Cmd) {
	m.sidesOpen = true
	m.sidesInput = textinput.New()
	m.sidesInput.Prompt = ""
	m.sidesInput.CharLimit = 1
	m.sidesInput.Placeholder = fmt.Sprintf("%d..%d", tools.NgonSides[0], tools.NgonSides[len(tools.NgonSides)-1])
	m.sidesInput.SetValue(strconv.Itoa(b.Sides()))
	return m, m.sidesInput.Focus()
}

// handleSidesKeys processes keys while the sides modal is open.
func (m Model) handleSidesKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sidesOpen = false
		return m, nil

	case "enter":
		m.sidesOpen = false
		n, err := strconv.Atoi(strings.TrimSpace(m.sidesInput.Value()))
		if err != nil || n > tools.NgonSides[len(tools.NgonSides)-1] {
			m.check(fmt.Errorf("%w: %q", tools.ErrInvalidSides, m.sidesInput.Value()))
			return m, nil
		}
		if b := m.binding("N-gon"); b != nil && m.check(b.SetSides(n)) {
			m.setStatus("n-gon: %d sides", n)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sidesInput, cmd = m.sidesInput.Update(msg)
	return m, cmd
}

// snapshot writes the canvas to the configured PNG file.
func (m *Model) snapshot() {
	r, err := surface.Snapshot(m.canvas, surface.SnapshotOptions{Scale: 2, Padding: 10})
	if !m.check(err) {
		return
	}
	path := m.cfg.Editor.Snapshot
	if m.check(r.SavePNG(path)) {
		m.setStatus("wrote %s", path)
	}
}

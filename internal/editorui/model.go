// Package editorui is the interactive terminal figure editor: a tool
// panel, the canvas drawn through the terminal surface, and a status
// footer.
package editorui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/atotto/clipboard"

	"github.com/wesen/figdraw/internal/config"
	"github.com/wesen/figdraw/internal/scene"
	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/surface"
	"github.com/wesen/figdraw/pkg/tools"
)

const (
	panelWidth = 24
	footerH    = 1
)

// Model is the editor state. The canvas and terminal surface are shared
// pointers, so copies of Model made by bubbletea see the same drawing.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	cfg     config.Config
	canvas  *drawing.Canvas
	term    *surface.Terminal
	palette []*tools.Binding
	redraw  bool

	// n-gon sides modal
	sidesOpen  bool
	sidesInput textinput.Model

	status    string
	statusErr bool

	scriptPath string
	events     <-chan scene.Event

	copyText func(string) error
}

// New creates an editor for cv using the terminal and editor settings
// from cfg.
func New(cfg config.Config, cv *drawing.Canvas) Model {
	grid := surface.Grid{CellW: cfg.Terminal.CellWidth, CellH: cfg.Terminal.CellHeight}
	term := surface.NewTerminal(0, 0, grid)
	if cfg.Terminal.Grid {
		term.GridX, term.GridY = 5, 3
	}
	m := Model{
		cfg:      cfg,
		term:     term,
		copyText: clipboard.WriteAll,
	}
	m.setCanvas(cv)
	return m
}

// WithScript makes the editor rebuild the canvas from path every time
// events delivers a change.
func (m Model) WithScript(path string, events <-chan scene.Event) Model {
	m.scriptPath = path
	m.events = events
	return m
}

// Canvas returns the canvas being edited.
func (m Model) Canvas() *drawing.Canvas { return m.canvas }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// setCanvas swaps in cv with a fresh palette and the selection tool.
func (m *Model) setCanvas(cv *drawing.Canvas) {
	m.canvas = cv
	m.palette = tools.DefaultPalette(cv)
	if b := m.binding("N-gon"); b != nil {
		m.check(b.SetSides(m.cfg.Editor.NgonSides))
	}
	m.check(m.palette[0].Activate())
	m.redraw = true
}

func (m *Model) binding(name string) *tools.Binding {
	for _, b := range m.palette {
		if b.Name == name {
			return b
		}
	}
	return nil
}

func (m *Model) activeBinding() *tools.Binding {
	for _, b := range m.palette {
		if b.Active() {
			return b
		}
	}
	return nil
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

// check reports err on the status line and in the log.
func (m *Model) check(err error) bool {
	if err == nil {
		return true
	}
	drawing.Logger().Warn("editor", "err", err)
	m.status = err.Error()
	m.statusErr = true
	return false
}

// scriptMsg carries a watcher event into the update loop.
type scriptMsg scene.Event

func waitForScript(events <-chan scene.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return scriptMsg(ev)
	}
}

// reload rebuilds the canvas from the script.
func (m *Model) reload() {
	cv, err := scene.Build(context.Background(), m.cfg.CanvasOptions(), m.scriptPath)
	if !m.check(err) {
		return
	}
	m.setCanvas(cv)
	m.setStatus("reloaded %s (%d figures)", m.scriptPath, len(cv.Figures()))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForScript(m.events)
}

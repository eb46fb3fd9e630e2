package tealayout

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutBasic(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		BottomFixed("footer", 1).
		LeftFixed("tools", 24).
		LeftFixed("sep", 1).
		Remaining("canvas").
		Build()

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}

	ft := l.Get("footer")
	if ft.Rect != image.Rect(0, 23, 80, 24) {
		t.Errorf("footer: expected (0,23)-(80,24), got %v", ft.Rect)
	}

	tl := l.Get("tools")
	if tl.Rect != image.Rect(0, 0, 24, 23) {
		t.Errorf("tools: expected (0,0)-(24,23), got %v", tl.Rect)
	}

	sp := l.Get("sep")
	if sp.Rect != image.Rect(24, 0, 25, 23) {
		t.Errorf("sep: expected (24,0)-(25,23), got %v", sp.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(25, 0, 80, 23) {
		t.Errorf("canvas: expected (25,0)-(80,23), got %v", cv.Rect)
	}
}

func TestLayoutEditor(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		BottomFixed("footer", 1).
		LeftFixed("tools", 20).
		Remaining("canvas").
		Build()

	if got, want := l.Get("tools").Rect, image.Rect(0, 0, 20, 23); got != want {
		t.Errorf("tools: expected %v, got %v", want, got)
	}
	if got, want := l.Get("canvas").Rect, image.Rect(20, 0, 80, 23); got != want {
		t.Errorf("canvas: expected %v, got %v", want, got)
	}
}

func TestLayoutLeftTooWide(t *testing.T) {
	l := NewLayoutBuilder(40, 10).
		LeftFixed("left", 25).
		LeftFixed("more", 20).
		Remaining("canvas").
		Build()

	// 25 + 20 > 40 leaves nothing for the canvas
	if cv := l.Get("canvas").Rect; !cv.Empty() {
		t.Errorf("canvas: expected empty, got %v", cv)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		Remaining("full").
		Build()

	r := l.Get("full")
	if r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		BottomFixed("footer", 1).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// a 0-height terminal with a footer leaves a negative remainder, clamped to zero
	if cv.Rect.Dx() != 0 || cv.Rect.Dy() != 0 {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
	if ft := l.Get("footer").Rect; !ft.Empty() {
		t.Errorf("zero term footer: expected empty rect, got %v", ft)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		BottomFixed("footer", 1).
		LeftFixed("tools", 24).
		LeftFixed("sep", 1).
		Remaining("canvas").
		Build()

	regions := []Region{
		l.Get("footer"),
		l.Get("tools"),
		l.Get("sep"),
		l.Get("canvas"),
	}

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			ri, rj := regions[i], regions[j]
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutCanvasDimensions(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		BottomFixed("footer", 1).
		LeftFixed("tools", 24).
		LeftFixed("sep", 1).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// 80 - 24 - 1 = 55 wide, 24 - 1 = 23 tall
	if cv.Rect.Dx() != 55 || cv.Rect.Dy() != 23 {
		t.Errorf("canvas dims: expected 55x23, got %dx%d", cv.Rect.Dx(), cv.Rect.Dy())
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	r := l.Get("missing")
	if r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	// Should be roughly centered
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := FillLayer(r, style, "bg", 0)

	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestPanelLayer(t *testing.T) {
	r := Region{Name: "tools", Rect: image.Rect(0, 2, 6, 5)}
	layer := PanelLayer([]string{"ab", "cdefgh", "x", "dropped"}, r, lipgloss.NewStyle(), 1)
	if layer.GetID() != "tools" || layer.GetY() != 2 || layer.GetZ() != 1 {
		t.Fatalf("panel layer placed wrong: id=%q y=%d z=%d", layer.GetID(), layer.GetY(), layer.GetZ())
	}
	lines := strings.Split(layer.GetContent(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "ab    " {
		t.Errorf("line 0 = %q, want padded to 6", lines[0])
	}
}

func TestFillLayerEmpty(t *testing.T) {
	r := Region{Name: "empty", Rect: image.Rectangle{}}
	style := lipgloss.NewStyle()
	layer := FillLayer(r, style, "bg", 0)
	// Should not panic, returns empty layer
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

package drawing

import (
	"errors"
	"image"
	"slices"
	"testing"
)

// ── Connecting lines ──

// connect drags A's connector to p and releases it.
func connect(t *testing.T, c *Canvas, from FigureID, p image.Point) FigureID {
	t.Helper()
	h := connectorOf(t, c, from)
	if err := c.SetHandleSelected(h, true); err != nil {
		t.Fatalf("select connector: %v", err)
	}
	line := h.Line()
	if line == NoFigure {
		t.Fatal("selecting a connector should spawn a line")
	}
	if err := c.SetHandleLocation(h, p); err != nil {
		t.Fatalf("drag connector: %v", err)
	}
	if err := c.SetHandleSelected(h, false); err != nil {
		t.Fatalf("release connector: %v", err)
	}
	return line
}

func TestConnectorBindsToFigureUnderRelease(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	b := addRect(t, c, 200, 0, 50, 50)

	line := connect(t, c, a, image.Pt(200, 25))
	f := c.Figure(line)
	if f == nil {
		t.Fatal("line was discarded")
	}
	if f.EndFigure() != b || f.StartFigure() != a {
		t.Fatalf("line #%d→#%d, want #%d→#%d", f.StartFigure(), f.EndFigure(), a, b)
	}
	before, _ := c.EndLocation(line)
	if before != image.Pt(225, 25) {
		t.Errorf("end %v, want B's center (225,25)", before)
	}

	if err := c.Translate(b, image.Pt(10, 10)); err != nil {
		t.Fatal(err)
	}
	after, _ := c.EndLocation(line)
	if after.Sub(before) != image.Pt(10, 10) {
		t.Errorf("end moved by %v, want (10,10)", after.Sub(before))
	}
	checkInvariant(t, c, line)
}

func TestConnectingLineTouchesFollowEndFigure(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	b := addRect(t, c, 200, 0, 50, 50)
	line := connect(t, c, a, image.Pt(200, 25))

	if !c.Touches(line, image.Pt(225, 25)) {
		t.Fatal("line should touch at B's center")
	}
	_ = c.Translate(b, image.Pt(10, 10))
	if c.Touches(line, image.Pt(225, 25)) {
		t.Error("line still touches the old end position")
	}
	if !c.Touches(line, image.Pt(235, 35)) {
		t.Error("line should touch B's new center")
	}
	if !c.Touches(line, image.Pt(130, 30)) {
		t.Error("line should touch its new midpoint")
	}
}

func TestConnectingLineFollowsStartFigure(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	addRect(t, c, 200, 0, 50, 50)
	line := connect(t, c, a, image.Pt(200, 25))

	_ = c.SetLocation(a, image.Pt(0, 100))
	if got := c.Figure(line).Bounds(); got != image.Rect(24, 24, 226, 126) {
		t.Errorf("line bounds %v, want (24,24)-(226,126)", got)
	}
	checkInvariant(t, c, line)
}

func TestConnectorReleasedOverNothingDiscardsLine(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	line := connect(t, c, a, image.Pt(300, 300))
	if c.Figure(line) != nil {
		t.Error("line released over empty canvas should be removed")
	}
	if got := c.Figures(); !slices.Equal(got, []FigureID{a}) {
		t.Errorf("figures %v, want [%d]", got, a)
	}
}

func TestConnectorReleasedOverOwnerDiscardsLine(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	line := connect(t, c, a, image.Pt(0, 25))
	if c.Figure(line) != nil {
		t.Error("line released over its owner should be removed")
	}
}

func TestUnboundConnectingLine(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	line, err := c.NewConnectingLine(a, image.Pt(100, 25))
	if err != nil {
		t.Fatal(err)
	}
	_ = c.AddFigure(line)
	if c.Touches(line, image.Pt(60, 25)) {
		t.Error("a line without an end figure never touches")
	}
	if err := c.SetLocation(line, image.Pt(0, 0)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetLocation: %v", err)
	}
	if err := c.SetSize(line, image.Pt(0, 0)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("SetSize: %v", err)
	}
	before := c.Figure(line).Bounds()
	if err := c.Translate(line, image.Pt(5, 5)); err != nil {
		t.Fatal(err)
	}
	if c.Figure(line).Bounds() != before {
		t.Error("translating a connecting line must not move it")
	}
	if got := c.Figure(line).Bounds(); got != image.Rect(24, 24, 101, 26) {
		t.Errorf("bounds %v, want (24,24)-(101,26)", got)
	}
}

func TestSetEndFigureRejectsStart(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	line, _ := c.NewConnectingLine(a, image.Pt(100, 100))
	if err := c.SetEndFigure(line, a); !errors.Is(err, ErrSelfConnection) {
		t.Errorf("expected ErrSelfConnection, got %v", err)
	}
	if c.Figure(line).EndFigure() != NoFigure {
		t.Error("rejected binding changed the end figure")
	}
}

func TestSetEndFigureRejectsCycle(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	l1, _ := c.NewConnectingLine(a, image.Pt(100, 100))
	l2, _ := c.NewConnectingLine(l1, image.Pt(200, 200))
	if err := c.SetEndFigure(l1, l2); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
	if err := c.SetEndFigure(l1, l1); !errors.Is(err, ErrCycle) {
		t.Errorf("binding a line to itself: expected ErrCycle, got %v", err)
	}
}

func TestSetEndLocationReleasesEnd(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	b := addRect(t, c, 200, 0, 50, 50)
	line := connect(t, c, a, image.Pt(200, 25))

	if err := c.SetEndLocation(line, image.Pt(100, 100)); err != nil {
		t.Fatal(err)
	}
	if c.Figure(line).EndFigure() != NoFigure {
		t.Error("end should be released")
	}
	if slices.Contains(c.Dependents(b), line) {
		t.Error("line should no longer depend on B")
	}
	if p, _ := c.EndLocation(line); p != image.Pt(100, 100) {
		t.Errorf("end %v", p)
	}
}

func TestRemoveFigureRemovesDependentLines(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 50, 50)
	b := addRect(t, c, 200, 0, 50, 50)
	line := connect(t, c, a, image.Pt(200, 25))

	if err := c.RemoveFigure(b); err != nil {
		t.Fatal(err)
	}
	if c.Figure(line) != nil {
		t.Error("line bound to a removed figure should be removed")
	}
	if got := c.Figures(); !slices.Equal(got, []FigureID{a}) {
		t.Errorf("figures %v", got)
	}
	if err := c.RemoveFigure(b); !errors.Is(err, ErrNoFigure) {
		t.Errorf("second removal: expected ErrNoFigure, got %v", err)
	}
}

// ── Canvas membership and hit testing ──

func TestAddFigureIdempotent(t *testing.T) {
	c := newTestCanvas()
	id := addRect(t, c, 0, 0, 10, 10)
	_ = c.AddFigure(id)
	if n := len(c.Figures()); n != 1 {
		t.Errorf("expected 1 figure, got %d", n)
	}
}

func TestCreatedFigureNotOnCanvasUntilAdded(t *testing.T) {
	c := newTestCanvas()
	id := c.NewFilledRectangle(image.Pt(0, 0), image.Pt(10, 10))
	if len(c.Figures()) != 0 {
		t.Error("figure should not be painted before AddFigure")
	}
	if c.FindFigureAtPoint(image.Pt(5, 5)) != NoFigure {
		t.Error("figure should not be hit before AddFigure")
	}
	_ = c.AddFigure(id)
	if c.FindFigureAtPoint(image.Pt(5, 5)) != id {
		t.Error("figure should be hit after AddFigure")
	}
}

func TestFindFigureAtPointOrder(t *testing.T) {
	top := NewCanvas(Options{})
	bottom := NewCanvas(Options{HitOrder: HitBottomMost})
	for _, c := range []*Canvas{top, bottom} {
		for range 2 {
			id := c.NewFilledRectangle(image.Pt(0, 0), image.Pt(50, 50))
			_ = c.AddFigure(id)
		}
	}
	if got := top.FindFigureAtPoint(image.Pt(10, 10)); got != 1 {
		t.Errorf("top-most hit = %d, want 1", got)
	}
	if got := bottom.FindFigureAtPoint(image.Pt(10, 10)); got != 0 {
		t.Errorf("bottom-most hit = %d, want 0", got)
	}

	_ = top.SetTopFigure(0)
	if got := top.FindFigureAtPoint(image.Pt(10, 10)); got != 0 {
		t.Errorf("after SetTopFigure(0) hit = %d, want 0", got)
	}
	if got := top.Figures(); !slices.Equal(got, []FigureID{1, 0}) {
		t.Errorf("paint order %v, want [1 0]", got)
	}
}

// ── Selection ──

func TestSelectionRectangleContainment(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 10, 10, 50, 50)
	b := addRect(t, c, 100, 100, 50, 50)

	c.SetSelectionRectangle(image.Rect(0, 0, 120, 120))
	if !c.Figure(a).Selected() {
		t.Error("A is fully contained and should be selected")
	}
	if c.Figure(b).Selected() {
		t.Error("B only overlaps and should not be selected")
	}
	if got := c.SelectedFigures(); !slices.Equal(got, []FigureID{a}) {
		t.Errorf("SelectedFigures = %v", got)
	}

	c.SetSelectionRectangle(image.Rectangle{})
	if !c.Figure(a).Selected() {
		t.Error("clearing the band must not change selection")
	}
	if c.SelectionRectangle() != (image.Rectangle{}) {
		t.Error("band should be cleared")
	}

	c.SetSelectionRectangle(image.Rect(90, 90, 200, 200))
	if c.Figure(a).Selected() || !c.Figure(b).Selected() {
		t.Error("new band should select exactly B")
	}
}

func TestSetSelectedDoesNotAffectOthers(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 10, 10, 100, 50)
	b := addRect(t, c, 300, 300, 10, 10)
	_ = c.SetSelected(b, true)
	c.TakeDamage()

	_ = c.SetSelected(a, true)
	if !c.Figure(b).Selected() {
		t.Error("selecting A deselected B")
	}
	got, _ := c.Damage()
	if got != image.Rect(5, 5, 115, 65) {
		t.Errorf("damage %v, want A's expanded bounds", got)
	}

	c.ClearSelected()
	if len(c.SelectedFigures()) != 0 {
		t.Error("ClearSelected left figures selected")
	}
}

// ── Damage ──

func TestDamageCallbackAndTake(t *testing.T) {
	c := newTestCanvas()
	var seen []image.Rectangle
	c.OnDamage(func(r image.Rectangle) { seen = append(seen, r) })

	addRect(t, c, 0, 0, 10, 10)
	addRect(t, c, 20, 20, 10, 10)
	if len(seen) != 2 {
		t.Fatalf("expected 2 damage callbacks, got %d", len(seen))
	}
	r, ok := c.TakeDamage()
	if !ok || r != image.Rect(0, 0, 30, 30) {
		t.Errorf("TakeDamage = %v %v", r, ok)
	}
	if _, ok := c.Damage(); ok {
		t.Error("damage should be empty after TakeDamage")
	}
}

func TestHandleSelectionRepaintsHandle(t *testing.T) {
	c := newTestCanvas()
	id := addRect(t, c, 0, 0, 100, 100)
	h := handleOf(t, c, id, LocTopLeft)
	c.TakeDamage()
	_ = c.SetHandleSelected(h, true)
	got, _ := c.Damage()
	if got != image.Rect(-5, -5, 5, 5) {
		t.Errorf("damage %v, want (-5,-5)-(5,5)", got)
	}
	if !h.Selected() {
		t.Error("handle should be selected")
	}
}

func TestHandleTouches(t *testing.T) {
	c := newTestCanvas()
	id := addRect(t, c, 0, 0, 100, 100)
	h := handleOf(t, c, id, LocBottomRight)
	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(100, 100), true},
		{image.Pt(104, 96), true},
		{image.Pt(105, 100), false},
		{image.Pt(100, 95), false},
	}
	for _, tc := range tests {
		if got := c.HandleTouches(h, tc.p); got != tc.want {
			t.Errorf("HandleTouches(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

// ── Painting ──

func TestPaintOrder(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 0, 0, 40, 40)
	line := c.NewLine(image.Pt(0, 100), image.Pt(50, 100))
	_ = c.AddFigure(line)
	c.SetSelectionRectangle(image.Rect(200, 200, 210, 210))
	_ = c.SetSelected(a, true)

	rec := &recorder{}
	c.Paint(rec)

	if rec.calls[0] != "fill (200,200)-(210,210) fill-light" {
		t.Errorf("first call %q, want the band fill", rec.calls[0])
	}
	if rec.calls[1] != "rect (0,0)-(40,40) outline" {
		t.Errorf("second call %q, want A's outline", rec.calls[1])
	}
	// 9 plain handles as outlines, the connector as an ellipse
	var ellipses, handleRects int
	for _, call := range rec.calls[2:12] {
		switch call[:4] {
		case "elli":
			ellipses++
		case "rect":
			handleRects++
		}
	}
	if ellipses != 1 || handleRects != 9 {
		t.Errorf("handles: %d ellipses, %d rects", ellipses, handleRects)
	}
	if rec.calls[12] != "line (0,100) (50,100) outline" {
		t.Errorf("line call %q", rec.calls[12])
	}
	if last := rec.calls[len(rec.calls)-1]; last != "rect (200,200)-(210,210) outline-selected" {
		t.Errorf("last call %q, want band outline", last)
	}
	if len(rec.calls) != 14 {
		t.Errorf("expected 14 calls, got %d", len(rec.calls))
	}
}

func TestDescribe(t *testing.T) {
	c := newTestCanvas()
	a := addRect(t, c, 10, 10, 100, 50)
	line := c.NewLine(image.Pt(0, 0), image.Pt(30, 40))
	if got := c.Describe(a); got != "rectangle #0 at (10,10) 100x50" {
		t.Errorf("Describe(rect) = %q", got)
	}
	if got := c.Describe(line); got != "line #1 (0,0)→(30,40) len 50" {
		t.Errorf("Describe(line) = %q", got)
	}
	if got := c.Describe(99); got != "#99 (gone)" {
		t.Errorf("Describe(99) = %q", got)
	}
}

// ── Tools ──

type fakeTool struct {
	active bool
	events []string
}

func (f *fakeTool) SetActive(a bool)                   { f.active = a }
func (f *fakeTool) PointerDown(b Button, p image.Point) { f.events = append(f.events, "down "+b.String()) }
func (f *fakeTool) PointerMove(b Button, p image.Point) { f.events = append(f.events, "move "+b.String()) }
func (f *fakeTool) PointerUp(b Button, p image.Point)   { f.events = append(f.events, "up "+b.String()) }

func TestSetActiveToolSwaps(t *testing.T) {
	c := newTestCanvas()
	first, second := &fakeTool{}, &fakeTool{}

	c.SetActiveTool(first)
	c.PointerDown(ButtonLeft, image.Pt(1, 1))
	c.SetActiveTool(second)
	if first.active || !second.active {
		t.Error("activation flags not swapped")
	}
	c.PointerMove(ButtonLeft, image.Pt(2, 2))
	c.PointerUp(ButtonRight, image.Pt(2, 2))
	if !slices.Equal(first.events, []string{"down left"}) {
		t.Errorf("first tool events %v", first.events)
	}
	if !slices.Equal(second.events, []string{"move left", "up right"}) {
		t.Errorf("second tool events %v", second.events)
	}

	c.ClearActiveTool()
	if second.active || c.ActiveTool() != nil {
		t.Error("ClearActiveTool should deactivate")
	}
	c.PointerDown(ButtonLeft, image.Pt(0, 0))
	if len(second.events) != 2 {
		t.Error("events must be dropped without an active tool")
	}
}

// Package scene builds figures on a canvas from JavaScript scene scripts
// evaluated with goja.
//
// A script sees these globals, each returning a figure id where it
// creates one:
//
//	rect(x, y, w, h)            filledRect(x, y, w, h)
//	line(x1, y1, x2, y2)        polygon([[x, y], ...])
//	connect(from, to)           move(id, dx, dy)
//	select(id)                  remove(id)
//	count()                     print(...)
package scene

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/wesen/figdraw/pkg/drawing"
)

var (
	// ErrBadArgument reports a missing or malformed script argument.
	ErrBadArgument = errors.New("bad argument")
	// ErrInterrupted reports a script stopped by its context.
	ErrInterrupted = errors.New("script interrupted")
)

// Scene runs scripts against one canvas.
type Scene struct {
	canvas  *drawing.Canvas
	runtime *goja.Runtime
	Output  []string
}

// New binds a fresh runtime to cv.
func New(cv *drawing.Canvas) *Scene {
	s := &Scene{canvas: cv, runtime: goja.New()}
	vm := s.runtime

	vm.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		s.Output = append(s.Output, strings.Join(parts, " "))
		return goja.Undefined()
	})
	vm.Set("rect", s.rectangle(false))
	vm.Set("filledRect", s.rectangle(true))
	vm.Set("line", func(call goja.FunctionCall) goja.Value {
		p1 := image.Pt(s.intArg(call, 0, "x1"), s.intArg(call, 1, "y1"))
		p2 := image.Pt(s.intArg(call, 2, "x2"), s.intArg(call, 3, "y2"))
		return s.add(cv.NewLine(p1, p2))
	})
	vm.Set("polygon", func(call goja.FunctionCall) goja.Value {
		var pts [][]int
		if err := vm.ExportTo(call.Argument(0), &pts); err != nil || len(pts) == 0 {
			s.throw(fmt.Errorf("%w: polygon wants [[x, y], ...]", ErrBadArgument))
		}
		for i, p := range pts {
			if len(p) != 2 {
				s.throw(fmt.Errorf("%w: polygon point %d is not [x, y]", ErrBadArgument, i))
			}
		}
		id := cv.NewPolygon(image.Pt(pts[0][0], pts[0][1]))
		for _, p := range pts[1:] {
			s.check(cv.AddPoint(id, image.Pt(p[0], p[1])))
		}
		return s.add(id)
	})
	vm.Set("connect", func(call goja.FunctionCall) goja.Value {
		from := s.idArg(call, 0, "from")
		to := s.idArg(call, 1, "to")
		return vm.ToValue(int(s.connect(from, to)))
	})
	vm.Set("move", func(call goja.FunctionCall) goja.Value {
		id := s.idArg(call, 0, "id")
		d := image.Pt(s.intArg(call, 1, "dx"), s.intArg(call, 2, "dy"))
		s.check(cv.Translate(id, d))
		return goja.Undefined()
	})
	vm.Set("select", func(call goja.FunctionCall) goja.Value {
		s.check(cv.SetSelected(s.idArg(call, 0, "id"), true))
		return goja.Undefined()
	})
	vm.Set("remove", func(call goja.FunctionCall) goja.Value {
		s.check(cv.RemoveFigure(s.idArg(call, 0, "id")))
		return goja.Undefined()
	})
	vm.Set("count", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(len(cv.Figures()))
	})
	return s
}

// Canvas returns the canvas the scene writes to.
func (s *Scene) Canvas() *drawing.Canvas { return s.canvas }

func (s *Scene) rectangle(filled bool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		loc := image.Pt(s.intArg(call, 0, "x"), s.intArg(call, 1, "y"))
		size := image.Pt(s.intArg(call, 2, "w"), s.intArg(call, 3, "h"))
		if filled {
			return s.add(s.canvas.NewFilledRectangle(loc, size))
		}
		return s.add(s.canvas.NewRectangle(loc, size))
	}
}

func (s *Scene) add(id drawing.FigureID) goja.Value {
	s.check(s.canvas.AddFigure(id))
	drawing.Logger().Debug("scene: figure added", "figure", s.canvas.Describe(id))
	return s.runtime.ToValue(int(id))
}

// connect draws a connecting line from the center of from and binds its
// end to to, the same way a connector drag does.
func (s *Scene) connect(from, to drawing.FigureID) drawing.FigureID {
	f := s.canvas.Figure(from)
	if f == nil {
		s.throw(fmt.Errorf("connect from #%d: %w", from, drawing.ErrNoFigure))
	}
	line, err := s.canvas.NewConnectingLine(from, f.Bounds().Min)
	s.check(err)
	s.check(s.canvas.AddFigure(line))
	if err := s.canvas.SetEndFigure(line, to); err != nil {
		s.check(s.canvas.RemoveFigure(line))
		s.throw(err)
	}
	return line
}

func (s *Scene) intArg(call goja.FunctionCall, i int, name string) int {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		s.throw(fmt.Errorf("%w: %s is missing", ErrBadArgument, name))
	}
	return int(v.ToInteger())
}

func (s *Scene) idArg(call goja.FunctionCall, i int, name string) drawing.FigureID {
	return drawing.FigureID(s.intArg(call, i, name))
}

func (s *Scene) check(err error) {
	if err != nil {
		s.throw(err)
	}
}

// throw raises err as a JS exception. The exception returned by Run
// unwraps to err.
func (s *Scene) throw(err error) {
	panic(s.runtime.NewGoError(err))
}

// Run evaluates src. name labels errors. Cancelling ctx interrupts a
// running script.
func (s *Scene) Run(ctx context.Context, name, src string) error {
	stop := context.AfterFunc(ctx, func() {
		s.runtime.Interrupt(ErrInterrupted)
	})
	_, err := s.runtime.RunScript(name, src)
	stop()
	s.runtime.ClearInterrupt()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RunFile reads and runs the script at path.
func (s *Scene) RunFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return s.Run(ctx, path, string(src))
}

// Build creates a canvas with opts and runs the script at path on it.
func Build(ctx context.Context, opts drawing.Options, path string) (*drawing.Canvas, error) {
	cv := drawing.NewCanvas(opts)
	if err := New(cv).RunFile(ctx, path); err != nil {
		return cv, err
	}
	return cv, nil
}

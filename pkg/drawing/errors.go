package drawing

import "errors"

var (
	// ErrUnsupported is returned when a mutation does not apply to a
	// figure kind, such as setting the size of a line.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrNoFigure is returned for IDs that are not in the arena.
	ErrNoFigure = errors.New("no such figure")

	// ErrSelfConnection is returned when a connecting line would end on
	// the figure it starts from.
	ErrSelfConnection = errors.New("connecting line cannot end on its start figure")

	// ErrCycle is returned when binding a connecting line would make a
	// figure depend on itself.
	ErrCycle = errors.New("connection would create a dependency cycle")
)

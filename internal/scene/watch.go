package scene

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wesen/figdraw/pkg/drawing"
)

// Event is sent by Watch when the script changed or watching failed.
type Event struct {
	Path string
	Err  error
}

// Watch reports changes to the script at path until ctx is done. The
// parent directory is watched so editors that replace the file by
// renaming still produce events. The channel is closed on return.
func Watch(ctx context.Context, path string) (<-chan Event, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	events := make(chan Event)
	go func() {
		defer w.Close()
		defer close(events)
		for {
			var out Event
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				out = Event{Path: abs, Err: err}
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				drawing.Logger().Debug("scene: script changed", "path", abs, "op", ev.Op.String())
				out = Event{Path: abs}
			}
			select {
			case events <- out:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

// Package config loads the editor settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wesen/figdraw/pkg/drawing"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Canvas holds the geometry settings of the figure canvas.
type Canvas struct {
	MinWidth    int    `toml:"min_width"`
	MinHeight   int    `toml:"min_height"`
	HandleSize  int    `toml:"handle_size"`
	TouchRadius int    `toml:"touch_radius"`
	HitOrder    string `toml:"hit_order"`
}

// Terminal holds the terminal mapping settings.
type Terminal struct {
	CellWidth  int  `toml:"cell_width"`
	CellHeight int  `toml:"cell_height"`
	Grid       bool `toml:"grid"`
}

// Log holds the logging settings.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Editor holds the interactive editor settings.
type Editor struct {
	NgonSides int    `toml:"ngon_sides"`
	Script    string `toml:"script"`
	Watch     bool   `toml:"watch"`
	Snapshot  string `toml:"snapshot"`
}

// Config is the whole settings file.
type Config struct {
	Canvas   Canvas   `toml:"canvas"`
	Terminal Terminal `toml:"terminal"`
	Log      Log      `toml:"log"`
	Editor   Editor   `toml:"editor"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Canvas: Canvas{
			MinWidth:    20,
			MinHeight:   20,
			HandleSize:  8,
			TouchRadius: 3,
			HitOrder:    "top",
		},
		Terminal: Terminal{CellWidth: 2, CellHeight: 4, Grid: true},
		Log:      Log{Level: "info"},
		Editor:   Editor{NgonSides: 6, Snapshot: "figdraw.png"},
	}
}

// Decode reads TOML from r on top of the defaults. Unknown keys are an
// error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Load reads the file at path. An empty path or a missing file yields
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.Canvas.MinWidth <= 0 || c.Canvas.MinHeight <= 0 {
		bad("canvas min size %dx%d must be positive", c.Canvas.MinWidth, c.Canvas.MinHeight)
	}
	if c.Canvas.HandleSize <= 0 {
		bad("canvas handle_size %d must be positive", c.Canvas.HandleSize)
	}
	if c.Canvas.TouchRadius <= 0 {
		bad("canvas touch_radius %d must be positive", c.Canvas.TouchRadius)
	}
	if _, err := parseHitOrder(c.Canvas.HitOrder); err != nil {
		errs = append(errs, err)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		bad("terminal cell %dx%d must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Editor.NgonSides < 3 || c.Editor.NgonSides > 8 {
		bad("editor ngon_sides %d outside 3..8", c.Editor.NgonSides)
	}
	return errors.Join(errs...)
}

func parseHitOrder(s string) (drawing.HitOrder, error) {
	switch strings.ToLower(s) {
	case "", "top":
		return drawing.HitTopMost, nil
	case "bottom":
		return drawing.HitBottomMost, nil
	}
	return 0, fmt.Errorf("%w: canvas hit_order %q is neither top nor bottom", ErrInvalid, s)
}

// CanvasOptions converts the canvas section for drawing.NewCanvas.
func (c Config) CanvasOptions() drawing.Options {
	order, _ := parseHitOrder(c.Canvas.HitOrder)
	return drawing.Options{
		MinSize:     image.Pt(c.Canvas.MinWidth, c.Canvas.MinHeight),
		HandleSize:  image.Pt(c.Canvas.HandleSize, c.Canvas.HandleSize),
		TouchRadius: c.Canvas.TouchRadius,
		HitOrder:    order,
	}
}

// SlogLevel parses the log level name.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}

// Package config loads editor settings from a TOML file.
//
// A missing file yields defaults. Keys present in the file override defaults,
// unknown keys are rejected so typos surface instead of being ignored.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/surface"
)

const (
	appDir   = "termpaint"
	fileName = "config.toml"
)

// Config is the root configuration
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Brush  BrushConfig  `toml:"brush"`
	Audio  AudioConfig  `toml:"audio"`
}

// CanvasConfig sets the fixed buffer dimensions
type CanvasConfig struct {
	Columns int `toml:"columns"`
	Rows    int `toml:"rows"`
}

// BrushConfig holds the brush palette cycled with [ and ]
type BrushConfig struct {
	Palette []Glyph `toml:"palette"`
}

// Glyph is one palette entry, colors are tcell names or #rrggbb
type Glyph struct {
	Glyph string `toml:"glyph"`
	Fg    string `toml:"fg,omitempty"`
	Bg    string `toml:"bg,omitempty"`
}

// AudioConfig controls feedback sounds
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Columns: constants.DefaultColumns,
			Rows:    constants.DefaultRows,
		},
		Brush: BrushConfig{
			Palette: []Glyph{
				{Glyph: "X", Fg: "aqua"},
				{Glyph: "#", Fg: "white"},
				{Glyph: "*", Fg: "yellow"},
				{Glyph: "+", Fg: "green"},
				{Glyph: "@", Fg: "red"},
				{Glyph: " ", Bg: "blue"},
			},
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/termpaint/config.toml,
// falling back to ~/.config when XDG_CONFIG_HOME is unset
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(home, ".config", appDir, fileName), nil
}

// Load reads path over the defaults, a missing file is not an error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := Default()
	defaults := cfg.Brush.Palette

	// Decoding into an existing slice reuses its elements, so a palette in
	// the file must start from nil to replace the default entries
	cfg.Brush.Palette = nil

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Brush.Palette == nil {
		cfg.Brush.Palette = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges, glyph widths and color names
func (c *Config) Validate() error {
	if c.Canvas.Columns < 1 || c.Canvas.Columns > constants.MaxColumns {
		return errors.Errorf("canvas.columns must be 1..%d, got %d", constants.MaxColumns, c.Canvas.Columns)
	}
	if c.Canvas.Rows < 1 || c.Canvas.Rows > constants.MaxRows {
		return errors.Errorf("canvas.rows must be 1..%d, got %d", constants.MaxRows, c.Canvas.Rows)
	}
	if math.IsNaN(c.Audio.Volume) || c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return errors.Errorf("audio.volume must be 0..1, got %g", c.Audio.Volume)
	}
	for i, g := range c.Brush.Palette {
		if _, err := g.Cell(); err != nil {
			return errors.Wrapf(err, "brush.palette[%d]", i)
		}
	}
	return nil
}

// Cell converts the glyph into a styled cell
func (g Glyph) Cell() (surface.Cell, error) {
	if utf8.RuneCountInString(g.Glyph) != 1 {
		return surface.Cell{}, errors.Errorf("glyph %q must be a single character", g.Glyph)
	}
	r, _ := utf8.DecodeRuneInString(g.Glyph)
	if runewidth.RuneWidth(r) != 1 {
		return surface.Cell{}, errors.Errorf("glyph %q must be one column wide", g.Glyph)
	}

	fg, err := parseColor(g.Fg)
	if err != nil {
		return surface.Cell{}, errors.Wrap(err, "fg")
	}
	bg, err := parseColor(g.Bg)
	if err != nil {
		return surface.Cell{}, errors.Wrap(err, "bg")
	}

	return surface.Cell{Rune: r, Style: tcell.StyleDefault.Foreground(fg).Background(bg)}, nil
}

// Palette returns the brush palette as cells
func (c *Config) Palette() ([]surface.Cell, error) {
	cells := make([]surface.Cell, 0, len(c.Brush.Palette))
	for i, g := range c.Brush.Palette {
		cell, err := g.Cell()
		if err != nil {
			return nil, errors.Wrapf(err, "brush.palette[%d]", i)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// parseColor accepts "", "default", tcell color names and #rrggbb
func parseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, errors.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Package config loads window and board settings from the user's XDG config
// directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/fancy-go/internal/board"
)

// File is the config path relative to the XDG config home.
const File = "fancy-go/config.json"

// InvalidConfig reports a setting that failed validation.
type InvalidConfig struct {
	Field string
	err   string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.err)
}

type Window struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Board struct {
	OriginX        float64 `json:"origin_x"`
	OriginY        float64 `json:"origin_y"`
	PointSpacing   float64 `json:"point_spacing"`
	PlaceableRange float64 `json:"placeable_radius"`
}

type Config struct {
	Window   Window `json:"window"`
	Board    Board  `json:"board"`
	Sound    bool   `json:"sound"`
	LogLevel string `json:"log_level"`

	// Source is the file the config was read from, empty for defaults.
	Source string `json:"-"`
}

// Default returns the built-in settings: a 1000×1000 window with the grid
// inset by one spacing.
func Default() Config {
	l := board.DefaultLayout()
	return Config{
		Window: Window{Title: "Fancy Go", Width: 1000, Height: 1000},
		Board: Board{
			OriginX:        l.Origin.X,
			OriginY:        l.Origin.Y,
			PointSpacing:   l.Spacing,
			PlaceableRange: l.Tolerance,
		},
		Sound:    true,
		LogLevel: "info",
	}
}

// Load reads the config. An empty path searches the XDG config dirs; a
// missing file there yields the defaults. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		found, err := xdg.SearchConfigFile(File)
		if err != nil {
			logrus.WithField("file", File).Debug("no config file found, using defaults")
			return &cfg, cfg.Validate()
		}
		path = found
	}
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	cfg.Source = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and that the grid fits inside the window.
func (c *Config) Validate() error {
	if c.Board.PointSpacing <= 0 {
		return &InvalidConfig{Field: "board.point_spacing", err: "must be positive"}
	}
	if c.Board.PlaceableRange < 0 {
		return &InvalidConfig{Field: "board.placeable_radius", err: "must not be negative"}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return &InvalidConfig{Field: "window", err: "size must be positive"}
	}
	l := c.Layout()
	if l.Origin.X+l.Extent() > float64(c.Window.Width) || l.Origin.Y+l.Extent() > float64(c.Window.Height) {
		return &InvalidConfig{Field: "board", err: fmt.Sprintf("grid does not fit a %dx%d window", c.Window.Width, c.Window.Height)}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{Field: "log_level", err: err.Error()}
	}
	return nil
}

// Layout converts the board section into a board.Layout.
func (c *Config) Layout() board.Layout {
	return board.Layout{
		Origin:    board.Point{X: c.Board.OriginX, Y: c.Board.OriginY},
		Spacing:   c.Board.PointSpacing,
		Tolerance: c.Board.PlaceableRange,
	}
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Save writes the config to the XDG config home and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(File)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, c.SaveTo(path)
}

// SaveTo writes the config as indented JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// IsInvalid reports whether err is a validation failure.
func IsInvalid(err error) bool {
	var ic *InvalidConfig
	return errors.As(err, &ic)
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/nikbrunner/vscroll/internal/layout"
)

// Config holds application configuration, stored as TOML.
type Config struct {
	// Storage selects the dataset backend: "sqlite" or "json".
	Storage    string       `toml:"storage"`
	Scroll     ScrollConfig `toml:"scroll"`
	Vertical   PaneConfig   `toml:"vertical"`
	Horizontal PaneConfig   `toml:"horizontal"`
	Grid       PaneConfig   `toml:"grid"`
}

// ScrollConfig holds the scroll view options shared by every pane.
type ScrollConfig struct {
	ScheduleLoad   bool `toml:"schedule_load"`
	FrameLoadCount int  `toml:"frame_load_count"`
	// Step is how many cells one scroll key press moves.
	Step int `toml:"step"`
}

// PaneConfig is the item size and layout of one scroll view, in cells.
type PaneConfig struct {
	ItemWidth     int    `toml:"item_width"`
	ItemHeight    int    `toml:"item_height"`
	SpacingX      int    `toml:"spacing_x"`
	SpacingY      int    `toml:"spacing_y"`
	PaddingTop    int    `toml:"padding_top"`
	PaddingBottom int    `toml:"padding_bottom"`
	PaddingLeft   int    `toml:"padding_left"`
	PaddingRight  int    `toml:"padding_right"`
	Axis          string `toml:"axis,omitempty"`
	MaxCols       int    `toml:"max_cols,omitempty"`
	MaxRows       int    `toml:"max_rows,omitempty"`
}

// Layout converts the pane settings to a layout config for mode.
func (p PaneConfig) Layout(mode layout.Mode) layout.Config {
	return layout.Config{
		Mode:          mode,
		SpacingX:      float64(p.SpacingX),
		SpacingY:      float64(p.SpacingY),
		PaddingTop:    float64(p.PaddingTop),
		PaddingBottom: float64(p.PaddingBottom),
		PaddingLeft:   float64(p.PaddingLeft),
		PaddingRight:  float64(p.PaddingRight),
		GridAxis:      layout.ParseGridAxis(p.Axis),
		MaxCols:       p.MaxCols,
		MaxRows:       p.MaxRows,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: BackendSQLite,
		Scroll: ScrollConfig{
			FrameLoadCount: 5,
			Step:           1,
		},
		Vertical: PaneConfig{
			ItemWidth:  20,
			ItemHeight: 3,
		},
		Horizontal: PaneConfig{
			ItemWidth:    12,
			ItemHeight:   3,
			SpacingX:     1,
			PaddingLeft:  1,
			PaddingRight: 1,
		},
		Grid: PaneConfig{
			ItemWidth:   12,
			ItemHeight:  3,
			SpacingX:    1,
			PaddingLeft: 1,
			Axis:        layout.HorizontalFirst.String(),
			MaxCols:     3,
			MaxRows:     3,
		},
	}
}

// LoadConfig reads config from the TOML file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Storage == "" {
		config.Storage = defaults.Storage
	}
	if config.Scroll.FrameLoadCount == 0 {
		config.Scroll.FrameLoadCount = defaults.Scroll.FrameLoadCount
	}
	if config.Scroll.Step <= 0 {
		config.Scroll.Step = defaults.Scroll.Step
	}
	backfillPane(&config.Vertical, defaults.Vertical)
	backfillPane(&config.Horizontal, defaults.Horizontal)
	backfillPane(&config.Grid, defaults.Grid)

	return &config, nil
}

// backfillPane replaces a pane with no item size by the default pane.
func backfillPane(p *PaneConfig, def PaneConfig) {
	if p.ItemWidth <= 0 && p.ItemHeight <= 0 {
		*p = def
		return
	}
	if p.ItemWidth <= 0 {
		p.ItemWidth = def.ItemWidth
	}
	if p.ItemHeight <= 0 {
		p.ItemHeight = def.ItemHeight
	}
}

// SaveConfig writes config to the TOML file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/vscroll/config.toml
func DefaultConfigFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Package config provides YAML-based configuration loading for the snake
// game: board geometry per variant, optional assets and display settings.
package config

import (
	"errors"
	"fmt"
)

// Config is the root of the YAML configuration.
type Config struct {
	Board   BoardSet      `yaml:"board"`
	Assets  AssetsConfig  `yaml:"assets"`
	Display DisplayConfig `yaml:"display"`
}

// BoardSet holds the geometry of each variant.
type BoardSet struct {
	Classic BoardConfig `yaml:"classic"`
	Pro     BoardConfig `yaml:"pro"`
}

// BoardConfig describes the game area in board units.
// Width and Height are the bordered game area; margins surround it.
type BoardConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	CellSize     int `yaml:"cell_size"`
	Border       int `yaml:"border"`
	MarginTop    int `yaml:"margin_top"`
	MarginSide   int `yaml:"margin_side"`
	MarginBottom int `yaml:"margin_bottom"`
}

// AssetsConfig locates the optional background music and image.
type AssetsConfig struct {
	Music  string  `yaml:"music"`
	Image  string  `yaml:"image"`
	Volume float64 `yaml:"volume"` // 0.0 - 1.0
	Muted  bool    `yaml:"muted"`  // Start with music muted
}

// DisplayConfig holds front-end settings.
type DisplayConfig struct {
	MenuFPS int `yaml:"menu_fps"` // Redraw rate outside of play
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if err := c.Board.Classic.validate("classic"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Board.Pro.validate("pro"); err != nil {
		errs = append(errs, err)
	}
	if c.Assets.Volume < 0 || c.Assets.Volume > 1 {
		errs = append(errs, fmt.Errorf("config: assets.volume %.2f out of range [0, 1]", c.Assets.Volume))
	}
	if c.Display.MenuFPS <= 0 {
		errs = append(errs, fmt.Errorf("config: display.menu_fps must be positive"))
	}
	return errors.Join(errs...)
}

func (b BoardConfig) validate(name string) error {
	if b.CellSize <= 0 {
		return fmt.Errorf("config: board.%s.cell_size must be positive", name)
	}
	if b.Border < 0 || b.MarginTop < 0 || b.MarginSide < 0 || b.MarginBottom < 0 {
		return fmt.Errorf("config: board.%s margins and border must not be negative", name)
	}
	inner := min(b.Width, b.Height) - 2*b.Border
	if inner < 2*b.CellSize {
		return fmt.Errorf("config: board.%s is %dx%d, too small for cell size %d", name, b.Width, b.Height, b.CellSize)
	}
	return nil
}

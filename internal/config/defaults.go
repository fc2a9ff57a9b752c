package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardSet{
			Classic: BoardConfig{
				Width:    600,
				Height:   400,
				CellSize: 20,
			},
			Pro: BoardConfig{
				Width:        600,
				Height:       400,
				CellSize:     20,
				Border:       10,
				MarginTop:    50,
				MarginSide:   20,
				MarginBottom: 50,
			},
		},
		Assets: AssetsConfig{
			Music:  "background_music.mp3",
			Image:  "background_image.jpg",
			Volume: 1.0,
		},
		Display: DisplayConfig{
			MenuFPS: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

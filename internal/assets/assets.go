// Package assets finds and loads the optional background image and music.
// Nothing here is fatal: a missing or broken asset is logged as a warning
// and the game runs without it.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotFound is returned when an asset file does not exist.
var ErrNotFound = errors.New("assets: file not found")

// Bundle holds whatever could be loaded. Both fields may be nil.
type Bundle struct {
	Backdrop *core.Backdrop
	Music    *audio.Music
}

// Close releases the music player.
func (b Bundle) Close() error {
	return b.Music.Close()
}

// Load loads the backdrop scaled to cols x rows cells and, when withMusic is
// set, starts the background music. Failures are logged and skipped.
func Load(cfg config.AssetsConfig, cols, rows int, withMusic bool, logger *log.Logger) Bundle {
	var b Bundle

	if cfg.Image != "" {
		bd, err := LoadBackdrop(cfg.Image, cols, rows)
		if err != nil {
			logger.Warn("background image unavailable, using plain background", "path", cfg.Image, "error", err)
		} else {
			logger.Debug("background image loaded", "path", cfg.Image, "cols", cols, "rows", rows)
			b.Backdrop = bd
		}
	}

	if withMusic && cfg.Music != "" {
		m, err := LoadMusic(cfg.Music, cfg.Volume)
		if err != nil {
			logger.Warn("background music unavailable, playing silently", "path", cfg.Music, "error", err)
		} else {
			logger.Debug("background music playing", "path", cfg.Music, "volume", cfg.Volume)
			b.Music = m
		}
	}

	return b
}

// LoadBackdrop decodes a JPEG or PNG image and scales it to the cell grid.
func LoadBackdrop(path string, cols, rows int) (*core.Backdrop, error) {
	if err := check(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return Scale(img, cols, rows), nil
}

// Scale resamples img to one colour per cell.
func Scale(img image.Image, cols, rows int) *core.Backdrop {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	bd := &core.Backdrop{Cols: cols, Rows: rows, Cells: make([]core.Color, 0, cols*rows)}
	for y := range rows {
		for x := range cols {
			c := dst.RGBAAt(x, y)
			bd.Cells = append(bd.Cells, core.RGB(c.R, c.G, c.B))
		}
	}
	return bd
}

// LoadMusic opens the track, applies the volume and starts playback.
func LoadMusic(path string, volume float64) (*audio.Music, error) {
	if err := check(path); err != nil {
		return nil, err
	}
	m, err := audio.Open(path)
	if err != nil {
		return nil, err
	}
	m.SetVolume(volume)
	if err := m.Play(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func check(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("assets: cannot stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("assets: %s is a directory", path)
	}
	return nil
}

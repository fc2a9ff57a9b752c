package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Appearance is the cosmetic state of the food. It never affects collision
// geometry, which always uses the cell size.
type Appearance struct {
	Green    int // Green channel of the food colour, 0..255
	Size     int // Drawn size in board units
	greenDir int
	sizeDir  int
}

func newAppearance(cell int) Appearance {
	return Appearance{Green: 0, Size: cell, greenDir: 1, sizeDir: 1}
}

// Color returns the food colour; red shading towards orange/yellow.
func (a Appearance) Color() core.Color {
	return core.RGB(255, uint8(core.Clamp(a.Green, 0, 255)), 0)
}

// step bounces both attributes between their bounds. The direction flips
// before a step that would leave the range.
func (a *Appearance) step(cell, colorStep, swing int) {
	if next := a.Green + colorStep*a.greenDir; next < 0 || next > 255 {
		a.greenDir = -a.greenDir
	}
	a.Green = core.Clamp(a.Green+colorStep*a.greenDir, 0, 255)

	lo, hi := cell-swing, cell+swing
	if next := a.Size + a.sizeDir; next < lo || next > hi {
		a.sizeDir = -a.sizeDir
	}
	a.Size = core.Clamp(a.Size+a.sizeDir, lo, hi)
}

// Food is the pickup currently on the board.
type Food struct {
	Pos  core.Point
	Look Appearance
}

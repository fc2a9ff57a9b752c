package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Overlap selects how the head is tested against the food.
type Overlap int

const (
	// OverlapExact requires the head to sit on the food position.
	OverlapExact Overlap = iota
	// OverlapProximity accepts any partial overlap of the two cells,
	// i.e. |dx| < cell and |dy| < cell.
	OverlapProximity
)

// Rules fix the geometry and progression of one game variant.
type Rules struct {
	CellSize int
	Field    core.Rect // Playable rectangle; the head must stay inside
	FoodArea core.Rect // Food is sampled at FoodArea origin + k*CellSize
	Start    core.Point
	StartDir Direction
	Overlap  Overlap

	BaseSpeed    int // Ticks per second at score 0
	MaxSpeed     int
	ScorePerStep int // Score needed for each extra tick per second

	AnimatedFood bool
	ColorStep    int // Green channel change per tick
	SizeSwing    int // Food size oscillates within CellSize ± SizeSwing
}

// ClassicRules builds the plain variant: the whole board is playable, the
// snake starts at (100, 50) heading right and eats only on an exact hit.
func ClassicRules(b config.BoardConfig) Rules {
	s := b.CellSize
	field := core.NewRect(b.MarginSide, b.MarginTop, b.Width, b.Height).Inset(b.Border)
	start := core.Point{
		X: core.Clamp(field.X+5*s, field.X, field.Right()-s),
		Y: core.Clamp(field.Y+5*s/2, field.Y, field.Bottom()-s),
	}

	// Food lives on the same lattice as the snake so exact hits are possible
	offX := (start.X - field.X) % s
	offY := (start.Y - field.Y) % s

	return Rules{
		CellSize:     s,
		Field:        field,
		FoodArea:     core.NewRect(field.X+offX, field.Y+offY, field.W-offX, field.H-offY),
		Start:        start,
		StartDir:     DirRight,
		Overlap:      OverlapExact,
		BaseSpeed:    8,
		MaxSpeed:     20,
		ScorePerStep: 5,
	}
}

// ProRules builds the bordered variant with animated food, proximity
// pickup and a faster speed ramp.
func ProRules(b config.BoardConfig) Rules {
	s := b.CellSize
	field := core.NewRect(b.MarginSide, b.MarginTop, b.Width, b.Height).Inset(b.Border)

	return Rules{
		CellSize:     s,
		Field:        field,
		FoodArea:     core.NewRect(field.X, field.Y, field.W-s, field.H-s),
		Start:        core.Point{X: b.MarginSide + b.Width/4, Y: b.MarginTop + b.Height/2},
		StartDir:     DirRight,
		Overlap:      OverlapProximity,
		BaseSpeed:    10,
		MaxSpeed:     25,
		ScorePerStep: 5,
		AnimatedFood: true,
		ColorStep:    5,
		SizeSwing:    5,
	}
}

// Speed returns the tick rate for the given score:
// min(base + score/step, max). It never decreases as score grows.
func (r Rules) Speed(score int) int {
	step := max(r.ScorePerStep, 1)
	return min(r.BaseSpeed+max(score, 0)/step, r.MaxSpeed)
}

// GridSize returns the field size in whole cells, rounding partial cells up.
func (r Rules) GridSize() (cols, rows int) {
	return core.CeilDiv(r.Field.W, r.CellSize), core.CeilDiv(r.Field.H, r.CellSize)
}

// foodGrid returns how many candidate columns and rows FoodArea holds.
func (r Rules) foodGrid() (cols, rows int) {
	return core.CeilDiv(r.FoodArea.W, r.CellSize), core.CeilDiv(r.FoodArea.H, r.CellSize)
}

// foodCandidate returns the position of grid cell (col, row) of FoodArea.
func (r Rules) foodCandidate(col, row int) core.Point {
	return core.Point{X: r.FoodArea.X + col*r.CellSize, Y: r.FoodArea.Y + row*r.CellSize}
}

// Overlaps reports whether a head at a would pick up food at b.
func (r Rules) Overlaps(a, b core.Point) bool {
	if r.Overlap == OverlapProximity {
		return core.CellRect(a, r.CellSize).Intersects(core.CellRect(b, r.CellSize))
	}
	return a == b
}

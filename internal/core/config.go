package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Menu redraw rate while no round is running
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Interval converts a rate in ticks per second to a frame budget.
// Non-positive rates fall back to one tick per second.
func Interval(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(ticksPerSecond)
}

// GameState is the summary a game reports back to the platform each tick.
type GameState struct {
	Score    int
	Speed    int  // Current ticks per second
	Phase    string
	Paused   bool
	GameOver bool
	Quit     bool // The session reached its terminal state
	Muted    bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Audio is the capability the game uses to control background music.
// Implementations must tolerate being called when no music is loaded.
type Audio interface {
	SetMuted(muted bool)
}

// Backdrop is a per-cell background image for the playable field,
// Cols x Rows cells in row-major order.
type Backdrop struct {
	Cols, Rows int
	Cells      []Color
}

// At returns the colour of the given cell, or the default colour when the
// backdrop is nil or the cell lies outside it.
func (b *Backdrop) At(col, row int) Color {
	if b == nil || col < 0 || row < 0 || col >= b.Cols || row >= b.Rows {
		return ColorDefault
	}
	return b.Cells[row*b.Cols+col]
}

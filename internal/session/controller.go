// Package session drives one snake game from the start screen through play,
// pause and game over. It owns the phase machine, turns input frames into
// calls on the snake simulation and draws everything into a core.Screen.
package session

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Phase is the controller state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Style selects how the board is drawn.
type Style int

const (
	StyleClassic Style = iota // Solid green snake on black
	StylePro                  // Gradient snake inside a framed gray field
)

// Variant describes one registered flavour of the game.
type Variant struct {
	ID    string
	Title string
	Rules snake.Rules
	Style Style
}

// Controller implements registry.Game for a snake variant.
type Controller struct {
	variant  Variant
	audio    core.Audio
	backdrop *core.Backdrop
	menuFPS  int

	cfg   core.RuntimeConfig
	rng   *rand.Rand
	phase Phase
	state *snake.State // nil until the first round starts
	muted bool

	lastCrash snake.Collision
	lastErr   error // Set when a round ended because food could not be placed
}

// New creates a controller sitting on the start screen.
func New(v Variant, env registry.Env) *Controller {
	c := &Controller{
		variant:  v,
		audio:    env.Audio,
		backdrop: env.Backdrop,
		menuFPS:  env.Config.Display.MenuFPS,
		muted:    env.Config.Assets.Muted,
	}
	if c.menuFPS <= 0 {
		c.menuFPS = env.Runtime.TickRate
	}
	if c.audio != nil && c.muted {
		c.audio.SetMuted(true)
	}
	c.Reset(env.Runtime)
	return c
}

// ID returns the variant identifier.
func (c *Controller) ID() string { return c.variant.ID }

// Title returns the display name.
func (c *Controller) Title() string { return c.variant.Title }

// Reset returns to the start screen and reseeds the RNG.
// The mute flag survives resets.
func (c *Controller) Reset(cfg core.RuntimeConfig) {
	c.cfg = cfg
	c.rng = rand.New(rand.NewSource(cfg.Seed))
	c.phase = PhaseStart
	c.state = nil
	c.lastCrash = snake.CollisionNone
	c.lastErr = nil
}

// Step handles the actions of one frame in arrival order and, when a round
// was running for the whole frame, advances the snake by one cell.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	wasPlaying := c.phase == PhasePlaying

	for _, a := range in.Actions {
		if c.phase == PhaseQuit {
			break
		}
		if a == core.ActionClose {
			c.phase = PhaseQuit
			break
		}

		stop := false
		switch c.phase {
		case PhaseStart:
			c.onStart(a)
		case PhasePlaying:
			stop = c.onPlaying(a)
		case PhasePaused:
			c.onPaused(a)
		case PhaseGameOver:
			c.onGameOver(a)
		}
		if stop {
			break
		}
	}

	if wasPlaying && c.phase == PhasePlaying {
		c.tick()
	}

	return core.StepResult{State: c.State()}
}

func (c *Controller) onStart(a core.Action) {
	switch a {
	case core.ActionYes:
		c.startRound()
	case core.ActionNo, core.ActionQuit:
		c.phase = PhaseQuit
	}
}

// onPlaying returns true when the rest of the frame must be discarded.
func (c *Controller) onPlaying(a core.Action) bool {
	switch {
	case a.IsDirection():
		if d, ok := snake.DirectionFor(a); ok {
			c.state.SetDirection(d)
		}
	case a == core.ActionMute:
		c.muted = !c.muted
		if c.audio != nil {
			c.audio.SetMuted(c.muted)
		}
	case a == core.ActionPause:
		c.phase = PhasePaused
		return true
	}
	return false
}

func (c *Controller) onPaused(a core.Action) {
	switch a {
	case core.ActionContinue, core.ActionPause:
		c.phase = PhasePlaying
	case core.ActionRestart:
		c.phase = PhaseStart
		c.state = nil
	case core.ActionQuit:
		c.phase = PhaseQuit
	}
}

func (c *Controller) onGameOver(a core.Action) {
	switch a {
	case core.ActionYes:
		c.phase = PhaseStart
		c.state = nil
	case core.ActionNo, core.ActionQuit:
		c.phase = PhaseQuit
	}
}

func (c *Controller) startRound() {
	st, err := snake.New(c.variant.Rules, c.rng)
	if err != nil {
		// Board too small to hold any food
		c.lastErr = err
		c.phase = PhaseGameOver
		return
	}
	c.state = st
	c.lastCrash = snake.CollisionNone
	c.lastErr = nil
	c.phase = PhasePlaying
}

// tick runs one simulation step of the current round.
func (c *Controller) tick() {
	c.state.UpdateFoodAppearance()

	out := c.state.Advance()
	if out.FoodErr != nil {
		c.lastErr = out.FoodErr
		c.phase = PhaseGameOver
		return
	}

	if hit := c.state.CheckCollision(); hit != snake.CollisionNone {
		c.lastCrash = hit
		c.phase = PhaseGameOver
	}
}

// Phase returns the current controller phase.
func (c *Controller) Phase() Phase { return c.phase }

// Round returns the running or finished round, or nil on the start screen.
func (c *Controller) Round() *snake.State { return c.state }

// Muted reports whether music is muted.
func (c *Controller) Muted() bool { return c.muted }

// State returns the summary reported to the platform.
func (c *Controller) State() core.GameState {
	gs := core.GameState{
		Phase:    c.phase.String(),
		Paused:   c.phase == PhasePaused,
		GameOver: c.phase == PhaseGameOver,
		Quit:     c.phase == PhaseQuit,
		Muted:    c.muted,
	}
	if c.state != nil {
		gs.Score = c.state.Score()
		gs.Speed = c.state.Speed()
	}
	return gs
}

// TickInterval follows the snake speed while playing and the menu rate
// otherwise.
func (c *Controller) TickInterval() time.Duration {
	if c.phase == PhasePlaying && c.state != nil {
		return core.Interval(c.state.Speed())
	}
	return core.Interval(c.menuFPS)
}

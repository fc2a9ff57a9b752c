package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	_ "github.com/vovakirdan/tui-snake/internal/session"
)

// recordingGame remembers the frames it was stepped with.
type recordingGame struct {
	frames [][]core.Action
	resets int
	quitOn core.Action
	quit   bool
}

func (g *recordingGame) ID() string                  { return "rec" }
func (g *recordingGame) Title() string               { return "Recorder" }
func (g *recordingGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *recordingGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "rec", core.ColorWhite) }
func (g *recordingGame) TickInterval() time.Duration { return time.Second / 10 }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, append([]core.Action(nil), in.Actions...))
	for _, a := range in.Actions {
		if a == g.quitOn || a == core.ActionClose {
			g.quit = true
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *recordingGame) State() core.GameState {
	return core.GameState{Quit: g.quit, Phase: "playing"}
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &recordingGame{quitOn: core.ActionQuit}
	m := NewModel(g, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.Update(runeKey('d'))
	if len(g.frames) != 0 {
		t.Fatal("keys should not step the game before a tick")
	}

	next, cmd := next.Update(TickMsg(time.Now()))
	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, expected 1", len(g.frames))
	}
	got := g.frames[0]
	if len(got) != 2 || got[0] != core.ActionUp || got[1] != core.ActionRight {
		t.Errorf("frame = %v, expected [Up Right]", got)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// Frame is cleared after each tick
	next.Update(TickMsg(time.Now()))
	if len(g.frames[1]) != 0 {
		t.Errorf("second frame = %v, expected empty", g.frames[1])
	}
}

func TestModelQuitsWhenGameQuits(t *testing.T) {
	g := &recordingGame{quitOn: core.ActionQuit}
	m := NewModel(g, core.DefaultConfig())

	next, _ := m.Update(runeKey('q'))
	next, _ = next.Update(TickMsg(time.Now()))

	model := next.(Model)
	if !model.quitting || !model.State().Quit {
		t.Error("model should stop once the game reports quit")
	}
	if model.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelCtrlCQuitsImmediately(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a quit command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if len(g.frames) != 1 || g.frames[0][0] != core.ActionClose {
		t.Errorf("frames = %v, expected one close frame", g.frames)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.DefaultConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model := next.(Model)

	if g.resets != 0 {
		t.Error("resize should not reset the game")
	}
	if model.screen.Width() != 100 || model.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d", model.screen.Width(), model.screen.Height())
	}
}

func TestModelInitResets(t *testing.T) {
	g := &recordingGame{}
	m := NewModel(g, core.DefaultConfig())

	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced by a time-based one")
	}
}

func TestModelWithSnake(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1

	env := registry.Env{Runtime: cfg}
	env.Config.Board.Classic.Width = 600
	env.Config.Board.Classic.Height = 400
	env.Config.Board.Classic.CellSize = 20
	env.Config.Display.MenuFPS = 30

	g, err := registry.Create("classic", env)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	m := NewModel(g, cfg)
	m.Init()

	next, _ := m.Update(runeKey('y'))
	next, _ = next.Update(TickMsg(time.Now()))
	if phase := next.(Model).State().Phase; phase != "playing" {
		t.Fatalf("phase = %q, expected playing", phase)
	}
	if g.TickInterval() != time.Second/8 {
		t.Errorf("interval = %v, expected 1/8s", g.TickInterval())
	}
	if next.View() == "" {
		t.Error("view should not be empty while playing")
	}
}

func TestPickerSelectsVariant(t *testing.T) {
	m := NewPickerModel(80, 24)
	if len(m.variants) < 2 {
		t.Fatalf("picker lists %d variants, expected classic and pro", len(m.variants))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the picker")
	}
	if got := next.(PickerModel).Selected(); got != "pro" {
		t.Errorf("Selected() = %q, expected pro", got)
	}
}

func TestPickerQuit(t *testing.T) {
	m := NewPickerModel(80, 24)
	next, _ := m.Update(runeKey('q'))
	if next.(PickerModel).Selected() != "" {
		t.Error("quitting picker should select nothing")
	}
}

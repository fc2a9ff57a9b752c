package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"m", runeKey('m'), core.ActionMute},
		{"y", runeKey('y'), core.ActionYes},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionYes},
		{"n", runeKey('n'), core.ActionNo},
		{"c", runeKey('c'), core.ActionContinue},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionClose},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestPhaseHelp(t *testing.T) {
	keys := DefaultKeyMap()

	playing := phaseHelp{keys: keys, phase: "playing"}.ShortHelp()
	if len(playing) != 6 {
		t.Errorf("playing help has %d bindings, expected 6", len(playing))
	}

	paused := phaseHelp{keys: keys, phase: "paused"}.ShortHelp()
	if paused[0].Help().Desc != "continue" {
		t.Errorf("paused help starts with %q", paused[0].Help().Desc)
	}

	start := phaseHelp{keys: keys, phase: "start"}.ShortHelp()
	if start[0].Help().Desc != "yes" {
		t.Errorf("start help starts with %q", start[0].Help().Desc)
	}
}

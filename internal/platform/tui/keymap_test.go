package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"p", runeKey('p'), core.ActionPause},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"plus", runeKey('+'), core.ActionSpeedUp},
		{"minus", runeKey('-'), core.ActionSpeedDown},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()

	seen := 0
	for _, col := range km.FullHelp() {
		seen += len(col)
	}
	if seen != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", seen)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}

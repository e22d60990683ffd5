package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/moonacre/lunafarm/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CmdUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CmdDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CmdLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CmdRight},
		{"vim up", runeKey('k'), core.CmdUp},
		{"vim down", runeKey('j'), core.CmdDown},
		{"vim left", runeKey('h'), core.CmdLeft},
		{"vim right", runeKey('l'), core.CmdRight},
		{"shift arrow up", tea.KeyMsg{Type: tea.KeyShiftUp}, core.CmdShiftUp},
		{"shift arrow down", tea.KeyMsg{Type: tea.KeyShiftDown}, core.CmdShiftDown},
		{"shift vim left", runeKey('H'), core.CmdShiftLeft},
		{"shift vim right", runeKey('L'), core.CmdShiftRight},
		{"space pickup", runeKey(' '), core.CmdPickup},
		{"use", runeKey('u'), core.CmdAction},
		{"help", runeKey('?'), core.CmdToggleHelp},
		{"clear", tea.KeyMsg{Type: tea.KeyCtrlL}, core.CmdClear},
		{"quit q", runeKey('q'), core.CmdQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CmdQuit},
		{"unbound", runeKey('z'), core.CmdNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.Command(tc.msg)
			if got != tc.expected {
				t.Errorf("Command(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nagarjuna111355/water-sort-puzzle-game/internal/core"
)

// keyMsg builds the key message Bubble Tea sends for s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionLeft, false},
		{"h", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{" ", core.ActionSelect, false},
		{"enter", core.ActionSelect, false},
		{"u", core.ActionUndo, false},
		{"backspace", core.ActionUndo, false},
		{"s", core.ActionSkip, false},
		{"i", core.ActionToggleUnlimited, false},
		{"+", core.ActionAddContainer, false},
		{"-", core.ActionRemoveContainer, false},
		{"r", core.ActionRestart, false},
		{"n", core.ActionNext, false},
		{"esc", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.key, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("u"), &frame) {
		t.Error("u should not quit")
	}
	if !frame.Has(core.ActionUndo) {
		t.Error("frame should have ActionUndo")
	}

	km.MapKeyToFrame(keyMsg("x"), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("unmapped key changed the frame: %v", frame.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"left", MenuActionLeft},
		{"right", MenuActionRight},
		{"[", MenuActionPageUp},
		{"]", MenuActionPageDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.action)
		}
	}
}

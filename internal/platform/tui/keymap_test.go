package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typing-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyToFrameTypesLetters(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	// Letters that were control keys in other games must reach the word
	for _, s := range []string{"q", "p", "r", "w"} {
		if km.MapKeyToFrame(runeKey(s), &frame) {
			t.Fatalf("%q should not quit", s)
		}
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, &frame)

	if got := string(frame.Runes); got != "qprw " {
		t.Errorf("Expected typed %q, got %q", "qprw ", got)
	}
	if len(frame.Actions) != 0 {
		t.Errorf("Expected no actions, got %v", frame.Actions)
	}
}

func TestMapKeyToFrameControlKeys(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		frame := core.NewInputFrame()
		quit := km.MapKeyToFrame(tt.msg, &frame)
		if quit != tt.quit {
			t.Errorf("%s: expected quit=%v, got %v", tt.msg, tt.quit, quit)
		}
		if !frame.Has(tt.action) {
			t.Errorf("%s: expected action %s", tt.msg, tt.action)
		}
		if len(frame.Runes) != 0 {
			t.Errorf("%s: control key should not type, got %q", tt.msg, string(frame.Runes))
		}
	}
}

func TestMapKeyToFrameDropsPaste(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goroutine"), Paste: true}, &frame)
	if len(frame.Runes) != 0 {
		t.Errorf("Pasted text should be dropped, got %q", string(frame.Runes))
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.msg, tt.want, got)
		}
	}
}

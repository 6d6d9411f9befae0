package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-tui/cavern/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionCursorLeft},
		{"h", core.ActionCursorLeft},
		{"right", core.ActionCursorRight},
		{"l", core.ActionCursorRight},
		{"up", core.ActionCursorUp},
		{"k", core.ActionCursorUp},
		{"down", core.ActionCursorDown},
		{"j", core.ActionCursorDown},
		{"space", core.ActionToggleCell},
		{"c", core.ActionClear},
		{"g", core.ActionRegen},
		{"n", core.ActionNewSeed},
		{"p", core.ActionToggleRun},
		{".", core.ActionStep},
		{"1", core.ActionModePaint},
		{"2", core.ActionModeLife},
		{"3", core.ActionModeWalk},
		{"m", core.ActionBookmark},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", tt.key)
		}
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, action, tt.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, k := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(k))
		if !isQuit {
			t.Errorf("MapKey(%q) did not report quit", k)
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, want ActionQuit", k, action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("g"), &frame); quit {
		t.Fatal("g reported quit")
	}
	if !frame.Has(core.ActionRegen) {
		t.Error("frame missing ActionRegen after g")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Fatal("q did not report quit")
	}
}

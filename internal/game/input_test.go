package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Action{Kind: ActionMove, DX: 0, DY: -1}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Action{Kind: ActionMove, DX: 0, DY: 1}},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Action{Kind: ActionMove, DX: -1, DY: 0}},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Action{Kind: ActionMove, DX: 1, DY: 0}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Action{Kind: ActionExit}},
		{"alt-enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModAlt), Action{Kind: ActionToggleFullscreen}},
		{"plain enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Action{}},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Action{}},
		{"nil", nil, Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev); got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMovesAreUnitSteps(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight} {
		a := Classify(tcell.NewEventKey(key, 0, tcell.ModNone))
		if a.Kind != ActionMove {
			t.Fatalf("Key %v should move, got %v", key, a.Kind)
		}
		if abs(a.DX)+abs(a.DY) != 1 {
			t.Errorf("Key %v should move one cardinal step, got (%d,%d)", key, a.DX, a.DY)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

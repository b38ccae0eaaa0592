package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/games/snake"
)

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(22)
	if w != 46 || h != 24 {
		t.Errorf("BoardSize(22) = %dx%d, expected 46x24", w, h)
	}
}

func TestDrawBoard(t *testing.T) {
	w, h := BoardSize(4)
	s := core.NewScreen(w, h)
	state := snake.State{
		Food:  snake.Pos(0, 0),
		Snack: []snake.Position{snake.Pos(2, 1), snake.Pos(1, 1)},
	}

	DrawBoard(s, 0, 0, 4, state)

	if s.Get(0, 0) != '┌' || s.Get(w-1, h-1) != '┘' {
		t.Error("board border missing")
	}
	if c := s.GetCell(1, 1); c.Rune != glyphFood || c.Color != core.ColorRed {
		t.Errorf("food cell = %+v", c)
	}
	// Head at (2,1) starts at column 1+2*2.
	if c := s.GetCell(5, 2); c.Rune != glyphHead || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", c)
	}
	if c := s.GetCell(6, 2); c.Rune != glyphHead {
		t.Errorf("head should span two columns, got %+v", c)
	}
	if c := s.GetCell(3, 2); c.Rune != glyphBody || c.Color != core.ColorGreen {
		t.Errorf("body cell = %+v", c)
	}
	if c := s.GetCell(7, 4); c.Rune != glyphEmpty {
		t.Errorf("empty cell = %+v", c)
	}
}

func TestDrawBoardHeadOnTopOfBody(t *testing.T) {
	w, h := BoardSize(3)
	s := core.NewScreen(w, h)
	state := snake.State{
		Food:  snake.Pos(2, 2),
		Snack: []snake.Position{snake.Pos(1, 1), snake.Pos(1, 1)},
	}

	DrawBoard(s, 0, 0, 3, state)

	if c := s.GetCell(3, 2); c.Rune != glyphHead {
		t.Errorf("head should be drawn over the body, got %+v", c)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}

func TestKeyMapping(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("w"), core.ActionUp},
		{runes("d"), core.ActionRight},
		{runes("x"), core.ActionStop},
		{runes("r"), core.ActionRestart},
		{runes("?"), core.ActionHelp},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	want := map[core.Action]snake.Direction{
		core.ActionUp:    snake.Up,
		core.ActionDown:  snake.Down,
		core.ActionLeft:  snake.Left,
		core.ActionRight: snake.Right,
	}
	for a, d := range want {
		got, ok := DirectionFor(a)
		if !ok || got != d {
			t.Errorf("DirectionFor(%v) = %v, %v", a, got, ok)
		}
		if !a.IsMove() {
			t.Errorf("%v should be a move action", a)
		}
	}
	if _, ok := DirectionFor(core.ActionStop); ok {
		t.Error("stop is not a direction")
	}
}

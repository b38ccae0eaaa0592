package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/games/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellWidth is the number of terminal columns per board cell; two keeps
// cells roughly square.
const cellWidth = 2

// Board glyphs, one per column of a cell.
const (
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphFood  = '●'
	glyphEmpty = '·'
)

// BoardSize returns the screen area needed to draw a board, including the border.
func BoardSize(cells int) (w, h int) {
	return cells*cellWidth + 2, cells + 2
}

// DrawBoard draws the bordered board with food and snack at (x, y).
func DrawBoard(dst *core.Screen, x, y, cells int, s snake.State) {
	w, h := BoardSize(cells)
	dst.DrawBox(core.NewRect(x, y, w, h), core.ColorBlue)

	for cy := range cells {
		for cx := range cells {
			sx, sy := x+1+cx*cellWidth, y+1+cy
			dst.SetColored(sx, sy, glyphEmpty, core.ColorGray)
			dst.Set(sx+1, sy, ' ')
		}
	}

	bounds := core.NewRect(0, 0, cells, cells)
	drawCell := func(p snake.Position, r rune, c core.Color) {
		if !bounds.Contains(p.X, p.Y) {
			return
		}
		sx, sy := x+1+p.X*cellWidth, y+1+p.Y
		for i := range cellWidth {
			dst.SetColored(sx+i, sy, r, c)
		}
	}

	drawCell(s.Food, glyphFood, core.ColorRed)
	// Tail first so the head stays visible when the body overlaps itself.
	for i := len(s.Snack) - 1; i > 0; i-- {
		drawCell(s.Snack[i], glyphBody, core.ColorGreen)
	}
	if len(s.Snack) > 0 {
		drawCell(s.Snack[0], glyphHead, core.ColorBrightGreen)
	}
}

// statusLine describes the engine for the line under the board.
func statusLine(s snake.State, dir snake.Direction, stopped bool) string {
	if stopped {
		return fmt.Sprintf(" stopped at tick %d  (r to restart)", s.Tick)
	}
	return fmt.Sprintf(" tick %d  heading %s", s.Tick, dir)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

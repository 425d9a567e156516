package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Playfield glyphs
const (
	glyphBall   = '●'
	glyphPaddle = '█'
	glyphNet    = '┆'
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// fieldRect returns the cell rectangle of the playfield border.
// Row 0 holds the scoreboard; the field takes the rest.
func fieldRect(s *core.Screen) core.Rect {
	return core.NewRect(0, 1, s.Width(), s.Height()-1)
}

// toCell maps a world coordinate onto one of n cells starting at origin.
func toCell(v, min, span float64, origin, n int) int {
	if n <= 1 || span <= 0 {
		return origin
	}
	c := int(math.Round((v - min) / span * float64(n-1)))
	return origin + core.Clamp(c, 0, n-1)
}

// DrawSnapshot draws the playfield, paddles, ball and scoreboard.
// World coordinates are scaled to whatever size the screen has.
func DrawSnapshot(s *core.Screen, snap pong.Snapshot, humanSide pong.Side, flash string) {
	s.Clear()
	if s.Width() < 10 || s.Height() < 6 {
		s.DrawText(0, 0, "window too small")
		return
	}

	field := fieldRect(s)
	s.DrawBox(field, core.ColorGray)

	// Interior cells
	inX, inY := field.X+1, field.Y+1
	inW, inH := field.W-2, field.H-2
	b := snap.Bounds
	col := func(x float64) int { return toCell(x, b.MinX, b.Width(), inX, inW) }
	row := func(y float64) int { return toCell(y, b.MinY, b.Height(), inY, inH) }

	s.DrawVLine(col(b.Center().X), inY, inH, glyphNet, core.ColorGray)

	for _, p := range []pong.PaddleView{snap.Left, snap.Right} {
		color := core.ColorBrightMagenta
		if p.Controller == pong.ControllerHuman {
			color = core.ColorBrightCyan
		}
		x := col(p.X)
		for y := row(p.Y - p.HalfH); y <= row(p.Y+p.HalfH); y++ {
			s.SetColored(x, y, glyphPaddle, color)
		}
	}

	s.SetColored(col(snap.Ball.X), row(snap.Ball.Y), glyphBall, core.ColorBrightYellow)

	drawScoreboard(s, snap, humanSide)

	midY := inY + inH/2
	switch {
	case snap.Mode == pong.ModeFinished:
		s.DrawTextCentered(midY-1, winnerText(snap.Winner, humanSide), core.ColorGreen)
		s.DrawTextCentered(midY+1, "press r for a new game", core.ColorWhite)
	case snap.Paused():
		s.DrawTextCentered(midY, "PAUSED", core.ColorYellow)
	case flash != "":
		s.DrawTextCentered(inY+1, flash, core.ColorOrange)
	}
}

func drawScoreboard(s *core.Screen, snap pong.Snapshot, humanSide pong.Side) {
	left := fmt.Sprintf("%s %d", sideLabel(pong.SideLeft, humanSide), snap.LeftScore)
	right := fmt.Sprintf("%d %s", snap.RightScore, sideLabel(pong.SideRight, humanSide))
	s.DrawTextColored(1, 0, left, core.ColorWhite)
	s.DrawTextColored(s.Width()-1-len([]rune(right)), 0, right, core.ColorWhite)

	status := fmt.Sprintf("to %d  speed %.1fx", snap.MaxScore, snap.UserSpeed)
	if snap.Boost > 1 {
		status += fmt.Sprintf("  rally %.2fx", snap.Boost)
	}
	s.DrawTextCentered(0, status, core.ColorGray)
}

func sideLabel(side, humanSide pong.Side) string {
	switch {
	case side == humanSide:
		return "YOU"
	case humanSide == pong.SideNone:
		return strings.ToUpper(side.String())
	default:
		return "CPU"
	}
}

func winnerText(winner, humanSide pong.Side) string {
	switch {
	case humanSide == pong.SideNone:
		return strings.ToUpper(winner.String()) + " WINS"
	case winner == humanSide:
		return "YOU WIN"
	default:
		return "CPU WINS"
	}
}

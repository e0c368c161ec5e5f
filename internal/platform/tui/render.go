package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/engine"
	"github.com/vovakirdan/chromapulse/internal/round"
)

// Board geometry in terminal cells.
const (
	boardW     = 44
	boardH     = 13
	ringRX     = 15.0
	ringRY     = 5.0
	edgeGlyph  = "█"
	rectGlyph  = "▓"
	idleCircle = "○"
	liveCircle = "●"
)

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF3B5C"))
	popStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00E676"))
	hudStyle     = lipgloss.NewStyle().Padding(0, 1)

	comboStyles = map[string]lipgloss.Style{
		"":          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		"nice":      lipgloss.NewStyle().Foreground(lipgloss.Color("#4D9FFF")),
		"great":     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00E676")),
		"amazing":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD740")),
		"legendary": lipgloss.NewStyle().Bold(true).Blink(true).Foreground(lipgloss.Color("#AA46FF")),
	}
)

// colorStyle returns the foreground style for a palette color.
func colorStyle(c core.GameColor) lipgloss.Style {
	if c.IsZero() {
		return dimStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex))
}

// canvas is a fixed grid of pre-styled single-cell strings.
type canvas struct {
	w, h  int
	cells [][]string
}

func newCanvas(w, h int) *canvas {
	cells := make([][]string, h)
	for y := range cells {
		cells[y] = make([]string, w)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, s string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = s
}

func (c *canvas) String() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// circlePos returns the cell of circle i on the ring, clockwise from the top.
func circlePos(i int) (x, y int) {
	angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(round.CircleCount)
	cx := float64(boardW) / 2
	cy := float64(boardH) / 2
	return int(math.Round(cx + ringRX*math.Cos(angle))), int(math.Round(cy + ringRY*math.Sin(angle)))
}

// renderBoard draws the ring, the edge bars and the side rectangles.
func renderBoard(snap engine.Snapshot) string {
	cv := newCanvas(boardW, boardH)
	active := snap.ActiveRound

	for i := 0; i < round.CircleCount; i++ {
		x, y := circlePos(i)
		glyph := dimStyle.Render(idleCircle)
		if active != nil && active.Slot.Kind == round.SlotCircle && active.Slot.Circle == i {
			style := colorStyle(active.Color).Bold(true)
			glyph = style.Render(liveCircle)
			if snap.CircleKeyOpacity >= 0.5 {
				cv.set(x+1, y, style.Render(active.Color.Key))
			}
		}
		cv.set(x, y, glyph)
	}

	edge := func(x int, c core.GameColor, live bool) {
		style := colorStyle(c)
		if !live {
			style = style.Faint(true)
		}
		for y := 1; y < boardH-1; y++ {
			cv.set(x, y, style.Render(edgeGlyph))
		}
	}
	edge(0, snap.Decor.EdgeLeft, active != nil && active.Slot.Kind == round.SlotEdgeLeft)
	edge(boardW-1, snap.Decor.EdgeRight, active != nil && active.Slot.Kind == round.SlotEdgeRight)

	for y := boardH/2 - 1; y <= boardH/2+1; y++ {
		for dx := 0; dx < 2; dx++ {
			cv.set(3+dx, y, colorStyle(snap.Decor.LeftRect).Faint(true).Render(rectGlyph))
			cv.set(boardW-5+dx, y, colorStyle(snap.Decor.RightRect).Faint(true).Render(rectGlyph))
		}
	}

	if snap.State == engine.StateCountdown {
		label := fmt.Sprintf("%d", snap.Countdown)
		cv.set(boardW/2, boardH/2, titleStyle.Render(label))
	}
	if o := snap.LastOutcome; o != nil {
		var text string
		switch {
		case o.FailureText != "":
			text = failureStyle.Render(o.FailureText)
		case o.Result == engine.ResultCorrect:
			text = popStyle.Render(fmt.Sprintf("+%d", o.Points))
		}
		if text != "" {
			// Styled text spans several cells; place it in one and blank the rest.
			w := lipgloss.Width(text)
			x := boardW/2 - w/2
			cv.set(x, boardH/2, text)
			for i := 1; i < w; i++ {
				cv.set(x+i, boardH/2, "")
			}
		}
	}

	return cv.String()
}

// renderHUD draws the score line above the board.
func renderHUD(snap engine.Snapshot) string {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(0, 3-snap.Lives))
	combo := comboStyles[snap.ComboLevel].Render(fmt.Sprintf("x%d %s", snap.Combo, snap.ComboText))
	parts := []string{
		titleStyle.Render(fmt.Sprintf("%06d", snap.DisplayScore)),
		failureStyle.Render(hearts),
		combo,
		faintStyle.Render(fmt.Sprintf("speed x%.1f", snap.SpeedMultiplier)),
		faintStyle.Render(fmt.Sprintf("acc %d%%", snap.Accuracy)),
	}
	return hudStyle.Render(strings.Join(parts, "  "))
}

// renderLegend lists the color keys, fading out as the player improves.
func renderLegend(palette core.Palette, opacity float64) string {
	if opacity <= 0 {
		return ""
	}
	items := make([]string, len(palette))
	for i, c := range palette {
		style := colorStyle(c)
		if opacity < 1 {
			style = style.Faint(true)
		}
		items[i] = style.Render(fmt.Sprintf("[%s] %s", c.Key, c.Name))
	}
	return strings.Join(items, "  ")
}

// centerBlock centers a multi-line block within width.
func centerBlock(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// centerText centers a single line within width.
func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

package session

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Each board cell is drawn two columns wide and one row high so it looks
// roughly square in a terminal.
const (
	colsPerCell = 2
	hudHeight   = 1
)

var (
	proHeadColor = core.RGB(31, 64, 238)
	proTailColor = core.ColorTeal
)

// layout maps board units to screen positions for the current variant.
type layout struct {
	field      core.Rect // Board units
	cell       int
	cols, rows int       // Field size in cells
	box        core.Rect // Screen columns/rows, including the frame
}

func newLayout(r snake.Rules, screenW int) layout {
	cols, rows := r.GridSize()
	boxW := cols*colsPerCell + 2

	return layout{
		field: r.Field,
		cell:  r.CellSize,
		cols:  cols,
		rows:  rows,
		box:   core.NewRect((screenW-boxW)/2, hudHeight, boxW, rows+2),
	}
}

// fits reports whether the whole board is visible.
func (l layout) fits(dst *core.Screen) bool {
	return l.box.X >= 0 && l.box.Right() <= dst.Width() && l.box.Bottom() <= dst.Height()
}

// cellOf converts a board position to a field cell. ok is false outside
// the field.
func (l layout) cellOf(p core.Point) (col, row int, ok bool) {
	if !l.field.Contains(p) {
		return 0, 0, false
	}
	return (p.X - l.field.X) / l.cell, (p.Y - l.field.Y) / l.cell, true
}

// screenOf returns the left screen column and row of a field cell.
func (l layout) screenOf(col, row int) (x, y int) {
	return l.box.X + 1 + col*colsPerCell, l.box.Y + 1 + row
}

// Render draws the HUD, the board and any overlay for the current phase.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()

	l := newLayout(c.variant.Rules, dst.Width())
	if !l.fits(dst) {
		drawOverlay(dst, overlayLine{"Window too small", core.ColorRed},
			overlayLine{fmt.Sprintf("Need %dx%d", l.box.W, l.box.Bottom()), core.ColorWhite})
		return
	}

	c.renderHUD(dst, l)
	c.renderField(dst, l)
	if c.state != nil {
		c.renderSnake(dst, l)
		c.renderFood(dst, l)
	}

	switch c.phase {
	case PhaseStart:
		drawOverlay(dst,
			overlayLine{"Snake Game", core.ColorGreen},
			overlayLine{"", core.ColorDefault},
			overlayLine{"Press Y to Start or N to Quit", core.ColorWhite})
	case PhasePaused:
		drawOverlay(dst,
			overlayLine{"Paused", core.ColorWhite},
			overlayLine{"", core.ColorDefault},
			overlayLine{"Press C to Continue", core.ColorWhite},
			overlayLine{"Press R to Restart", core.ColorWhite},
			overlayLine{"Press Q to Quit", core.ColorWhite})
	case PhaseGameOver:
		reason := fmt.Sprintf("Score: %d", c.score())
		if c.lastErr != nil {
			reason = fmt.Sprintf("Board full! Score: %d", c.score())
		}
		drawOverlay(dst,
			overlayLine{"Game Over!", core.ColorRed},
			overlayLine{reason, core.ColorWhite},
			overlayLine{"", core.ColorDefault},
			overlayLine{"Press Y to Play Again or N to Quit", core.ColorWhite})
	}
}

func (c *Controller) score() int {
	if c.state == nil {
		return 0
	}
	return c.state.Score()
}

func (c *Controller) renderHUD(dst *core.Screen, l layout) {
	dst.DrawText(l.box.X, 0, fmt.Sprintf("Score: %d", c.score()), core.ColorWhite)

	if c.variant.Style != StylePro {
		return
	}

	speed := c.variant.Rules.BaseSpeed
	if c.state != nil {
		speed = c.state.Speed()
	}
	right := fmt.Sprintf("Speed: %d", speed)
	if c.muted {
		right = "[muted]  " + right
	}
	dst.DrawText(l.box.Right()-len(right), 0, right, core.ColorWhite)
}

func (c *Controller) renderField(dst *core.Screen, l layout) {
	inner := l.box.Inset(1)
	frame := core.ColorGray

	if c.variant.Style == StylePro {
		dst.FillRect(inner, core.ColorGray)
		frame = core.ColorWhite
	} else {
		dst.FillRect(inner, core.ColorBlack)
	}

	if c.backdrop != nil {
		for row := range l.rows {
			for col := range l.cols {
				bg := c.backdrop.At(col, row)
				if !bg.Set {
					continue
				}
				x, y := l.screenOf(col, row)
				for i := range colsPerCell {
					dst.SetCell(x+i, y, core.Cell{Rune: ' ', Bg: bg})
				}
			}
		}
	}

	dst.DrawBox(l.box, frame)
}

func (c *Controller) renderSnake(dst *core.Screen, l layout) {
	body := c.state.Body()
	for i, seg := range body {
		col, row, ok := l.cellOf(seg)
		if !ok {
			continue
		}
		color := core.ColorGreen
		if c.variant.Style == StylePro {
			color = segmentColor(i, len(body))
		}
		paintCell(dst, l, col, row, "  ", core.ColorDefault, color)
	}
}

func (c *Controller) renderFood(dst *core.Screen, l layout) {
	food, ok := c.state.Food()
	if !ok {
		return
	}
	col, row, ok := l.cellOf(food.Pos)
	if !ok {
		return
	}
	color := food.Look.Color()
	paintCell(dst, l, col, row, foodGlyph(food.Look.Size, l.cell), color, core.ColorDefault)
}

// paintCell writes one board cell. A set bg fills the cell; otherwise the
// existing background shows through behind the glyph.
func paintCell(dst *core.Screen, l layout, col, row int, glyph string, fg, bg core.Color) {
	x, y := l.screenOf(col, row)
	i := 0
	for _, r := range glyph {
		cell := dst.GetCell(x+i, y)
		cell.Rune = r
		cell.Fg = fg
		if bg.Set {
			cell.Bg = bg
		}
		dst.SetCell(x+i, y, cell)
		i++
	}
}

// segmentColor blends from head to tail along the body.
func segmentColor(index, length int) core.Color {
	if length <= 1 {
		return proHeadColor
	}
	t := float64(index) / float64(length)
	blended := toColorful(proHeadColor).BlendRgb(toColorful(proTailColor), t)
	r, g, b := blended.RGB255()
	return core.RGB(r, g, b)
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// foodGlyph picks a glyph pair matching the animated food size.
func foodGlyph(size, cell int) string {
	switch {
	case size <= cell-3:
		return "▪▪"
	case size >= cell+3:
		return "██"
	default:
		return "■■"
	}
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws a framed box with the given lines centred on the screen.
func drawOverlay(dst *core.Screen, lines ...overlayLine) {
	width := 0
	for _, ln := range lines {
		width = max(width, len([]rune(ln.text)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.ColorBlack)
	dst.DrawBox(box, core.ColorWhite)
	for i, ln := range lines {
		dst.DrawTextCentered(box.Y+1+i, ln.text, ln.color)
	}
}

package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per colour pair. It is shared by
// all SSH sessions.
type styleCache struct {
	mu     sync.Mutex
	styles map[cellStyle]lipgloss.Style
}

func (c *styleCache) get(fg, bg core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cellStyle{fg: fg, bg: bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg.Set {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Set {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	c.styles[key] = s
	return s
}

var styles = &styleCache{styles: make(map[cellStyle]lipgloss.Style)}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours are grouped to keep escape
// sequences short.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.Fg.Set && !start.Bg.Set {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

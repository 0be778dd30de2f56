package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/g2048/internal/core"
)

// lipglossStyle converts a cell style to a Lip Gloss style.
func lipglossStyle(st core.Style) lipgloss.Style {
	style := lipgloss.NewStyle()
	if st.FG != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(int(st.FG))))
	}
	if st.BG != core.ColorDefault {
		style = style.Background(lipgloss.Color(strconv.Itoa(int(st.BG))))
	}
	if st.Bold {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == core.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipglossStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
	"github.com/vovakirdan/g2048/internal/presenter"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = t2048.BoardSize*cellWidth + 1  // +1 for right border
	boardH = t2048.BoardSize*cellHeight + 1 // +1 for bottom border

	// MinWidth and MinHeight are the smallest screen the board fits on.
	MinWidth  = boardW + 2
	MinHeight = hudHeight + 1 + boardH
)

// tileColors maps tile values to their background colour.
var tileColors = map[int]core.Color{
	2:    254,
	4:    223,
	8:    215,
	16:   209,
	32:   203,
	64:   196,
	128:  229,
	256:  228,
	512:  227,
	1024: 221,
	2048: 214,
}

// TileStyle returns the style of a tile with the given value and treatment.
func TileStyle(value int, t presenter.Treatment) core.Style {
	st := core.Style{FG: core.ColorBlack, BG: core.ColorWhite}
	if bg, ok := tileColors[value]; ok {
		st.BG = bg
	} else if value > 2048 {
		st = core.Style{FG: core.ColorWhite, BG: core.ColorBlack}
	}
	if value >= 8 && value <= 64 {
		st.FG = core.ColorWhite
	}

	switch t {
	case presenter.TreatNew:
		st.Bold = true
		st.FG = core.ColorGreen
	case presenter.TreatMerged:
		st.Bold = true
		st.FG = core.ColorRed
	case presenter.TreatMoved:
		st.Bold = true
	}
	return st
}

// BoardView is the terminal Surface. It remembers what the presenter drew
// and counts down highlight and score-flash timers in ticks.
type BoardView struct {
	values     t2048.Board
	treatments [t2048.BoardSize][t2048.BoardSize]presenter.Treatment
	highlight  [t2048.BoardSize][t2048.BoardSize]int // Ticks left per cell

	score      int
	delta      int
	flashTicks int // Ticks left for the "+delta" addition

	message presenter.Message
	button  presenter.ButtonLabel

	highlightFor int
	flashFor     int
}

// NewBoardView creates a surface that keeps treatments for highlightTicks
// and score additions for flashTicks.
func NewBoardView(highlightTicks, flashTicks int) *BoardView {
	return &BoardView{
		button:       presenter.ButtonStart,
		highlightFor: max(highlightTicks, 1),
		flashFor:     max(flashTicks, 1),
	}
}

// DrawCell records a cell. A treatment restarts that cell's highlight timer.
func (b *BoardView) DrawCell(row, col, value int, t presenter.Treatment) {
	b.values[row][col] = value
	b.treatments[row][col] = t
	if t == presenter.TreatNone {
		b.highlight[row][col] = 0
		return
	}
	b.highlight[row][col] = b.highlightFor
}

// DrawScore records the score and starts the flash when delta is positive.
func (b *BoardView) DrawScore(score, delta int) {
	b.score = score
	if delta > 0 {
		b.delta = delta
		b.flashTicks = b.flashFor
	}
}

// ShowMessage records the banner.
func (b *BoardView) ShowMessage(m presenter.Message) {
	b.message = m
}

// SetButton records the button caption.
func (b *BoardView) SetButton(label presenter.ButtonLabel) {
	b.button = label
}

// Tick advances all timers by one frame.
func (b *BoardView) Tick() {
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			if b.highlight[y][x] == 0 {
				continue
			}
			b.highlight[y][x]--
			if b.highlight[y][x] == 0 {
				b.treatments[y][x] = presenter.TreatNone
			}
		}
	}
	if b.flashTicks > 0 {
		b.flashTicks--
		if b.flashTicks == 0 {
			b.delta = 0
		}
	}
}

// Treatment returns the treatment still shown at (row, col).
func (b *BoardView) Treatment(row, col int) presenter.Treatment {
	return b.treatments[row][col]
}

// ScoreAddition returns the "+delta" currently shown, or 0.
func (b *BoardView) ScoreAddition() int {
	return b.delta
}

// Render draws the board, HUD and banner onto dst.
func (b *BoardView) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		renderTooSmall(dst)
		return
	}

	area := dst.Bounds().Centered(boardW, hudHeight+1+boardH)
	boardX := area.X
	boardY := area.Y + hudHeight + 1

	b.renderHUD(dst, boardX, area.Y)
	b.renderBoard(dst, boardX, boardY)
	b.renderMessage(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.Plain)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.Plain)
}

// renderHUD draws the title, score with its flash and the button.
func (b *BoardView) renderHUD(dst *core.Screen, boardX, top int) {
	title := "2048"
	dst.DrawTextStyled(boardX+(boardW-len(title))/2, top, title, core.Style{FG: core.ColorOrange, Bold: true})

	scoreStr := fmt.Sprintf("Score: %d", b.score)
	dst.DrawText(boardX, top+1, scoreStr)
	if b.delta > 0 {
		dst.DrawTextStyled(boardX+len(scoreStr)+1, top+1, "+"+strconv.Itoa(b.delta), core.Style{FG: core.ColorGreen, Bold: true})
	}

	button := "[ " + string(b.button) + " ]"
	dst.DrawTextStyled(boardX+boardW-len(button), top+1, button, core.Style{FG: core.ColorBlack, BG: core.ColorBrightGold, Bold: true})
}

// renderBoard draws the 4x4 grid with tiles.
func (b *BoardView) renderBoard(dst *core.Screen, boardX, boardY int) {
	grid := core.Style{FG: core.ColorGray}

	// Grid borders
	for y := range t2048.BoardSize + 1 {
		for x := range t2048.BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == t2048.BoardSize:
				corner = '┐'
			case y == t2048.BoardSize && x == 0:
				corner = '└'
			case y == t2048.BoardSize && x == t2048.BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == t2048.BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == t2048.BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetStyled(px, py, corner, grid)

			if x < t2048.BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetStyled(px+i, py, '─', grid)
				}
			}
			if y < t2048.BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetStyled(px, py+i, '│', grid)
				}
			}
		}
	}

	// Tiles
	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			val := b.values[y][x]
			if val == 0 {
				continue
			}

			inner := core.NewRect(boardX+x*cellWidth+1, boardY+y*cellHeight+1, cellWidth-1, cellHeight-1)
			st := TileStyle(val, b.treatments[y][x])
			dst.FillRect(inner, ' ', st)

			valStr := strconv.Itoa(val)
			padLeft := max((inner.W-len(valStr))/2, 0)
			dst.DrawTextStyled(inner.X+padLeft, inner.Y, valStr, st)
		}
	}
}

// messageLines returns the banner text for a message.
func messageLines(m presenter.Message) []string {
	switch m {
	case presenter.MessageStart:
		return []string{"Press Enter", "or an arrow key", "to start"}
	case presenter.MessageWin:
		return []string{"YOU WIN!", "Press Enter to restart"}
	case presenter.MessageLose:
		return []string{"GAME OVER", "Press Enter to restart"}
	}
	return nil
}

// renderMessage draws the banner centered over the board.
func (b *BoardView) renderMessage(dst *core.Screen, boardX, boardY int) {
	lines := messageLines(b.message)
	if len(lines) == 0 {
		return
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(boardX, boardY, boardW, boardH).Centered(maxLen+4, len(lines)+2)
	st := core.Style{FG: core.ColorWhite, BG: core.ColorDarkGray, Bold: true}
	if b.message == presenter.MessageWin {
		st.FG = core.ColorBrightGold
	}

	dst.FillRect(box, ' ', st)
	dst.DrawBox(box, st)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextStyled(x, box.Y+1+i, line, st)
	}
}

package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that ends the game in a win.
const WinTile = 2048

// Board represents a 4x4 game board. Zero marks an empty cell.
type Board [BoardSize][BoardSize]int

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// slideRow slides and merges a single row to the left.
// A tile produced by a merge is never merged again in the same pass.
// Returns the updated row and the score gained from merges.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	var vals []int
	for _, v := range row {
		if v != 0 {
			vals = append(vals, v)
		}
	}

	writePos := 0
	for i := 0; i < len(vals); i++ {
		if i+1 < len(vals) && vals[i] == vals[i+1] {
			merged := vals[i] * 2
			result[writePos] = merged
			score += merged
			i++
		} else {
			result[writePos] = vals[i]
		}
		writePos++
	}

	return result, score
}

// reverseRows mirrors the board horizontally.
func reverseRows(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[y][BoardSize-1-x]
		}
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// orient rotates the board so that dir becomes a leftward move.
func orient(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return reverseRows(transpose(board))
	default:
		return board
	}
}

// unorient undoes orient for the same direction.
func unorient(board Board, dir Direction) Board {
	switch dir {
	case DirRight:
		return reverseRows(board)
	case DirUp:
		return transpose(board)
	case DirDown:
		return transpose(reverseRows(board))
	default:
		return board
	}
}

// Slide performs a move in the given direction without spawning.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return board, 0, false
	}

	oriented := orient(board, dir)
	var slid Board
	gained := 0
	for y := range BoardSize {
		row, score := slideRow(oriented[y])
		slid[y] = row
		gained += score
	}

	result := unorient(slid, dir)
	return result, gained, result != board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			// Check right neighbor
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// HasWinningTile reports whether any tile has reached WinTile.
func HasWinningTile(board Board) bool {
	return MaxTile(board) >= WinTile
}

// Sum returns the total of all tile values.
func Sum(board Board) int {
	total := 0
	for y := range BoardSize {
		for x := range BoardSize {
			total += board[y][x]
		}
	}
	return total
}

// BoardFromRows converts a slice grid to a Board.
// ok is false unless rows is exactly BoardSize rows of BoardSize values.
func BoardFromRows(rows [][]int) (board Board, ok bool) {
	if len(rows) != BoardSize {
		return Board{}, false
	}
	for y, row := range rows {
		if len(row) != BoardSize {
			return Board{}, false
		}
		copy(board[y][:], row)
	}
	return board, true
}

// Rows converts the board to a freshly allocated slice grid.
func (b Board) Rows() [][]int {
	rows := make([][]int, BoardSize)
	for y := range BoardSize {
		rows[y] = make([]int, BoardSize)
		copy(rows[y], b[y][:])
	}
	return rows
}

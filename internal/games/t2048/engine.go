// Package t2048 implements the classic 2048 puzzle game engine.
//
// The engine holds no I/O and no timers. Rendering, input handling, and
// animation belong to the presentation layer, which drives an Engine through
// its public methods and reads back State, Score, and Status.
package t2048

import (
	"math/rand"
	"time"
)

// Status represents the lifecycle state of a game.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPlaying Status = "playing"
	StatusWin     Status = "win"
	StatusLose    Status = "lose"
)

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s == StatusWin || s == StatusLose
}

// spawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const spawn4Prob = 0.10

// Source supplies the randomness used for tile spawning.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSource sets the random source used for spawning tiles.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithSeed seeds a math/rand source for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// Engine is the 2048 game state: board, score and status.
// It is not safe for concurrent use.
type Engine struct {
	board   Board
	initial Board
	score   int
	status  Status
	rng     Source
}

// New creates an engine. If initial is a 4x4 grid it becomes both the
// working board and the board restored by Restart; anything else
// (including nil) falls back to an empty board.
func New(initial [][]int, opts ...Option) *Engine {
	board, _ := BoardFromRows(initial)
	return NewFromBoard(board, opts...)
}

// NewFromBoard creates an engine starting from the given board.
func NewFromBoard(initial Board, opts ...Option) *Engine {
	e := &Engine{
		board:   initial,
		initial: initial,
		status:  StatusIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// State returns a copy of the current board.
func (e *Engine) State() Board {
	return e.board
}

// Grid returns the current board as a freshly allocated slice grid.
func (e *Engine) Grid() [][]int {
	return e.board.Rows()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Start begins a new game on an empty board with two random tiles.
func (e *Engine) Start() Board {
	e.board = Board{}
	e.score = 0
	e.status = StatusPlaying
	e.spawnTile()
	e.spawnTile()
	return e.State()
}

// Restart restores the board supplied at construction and returns to idle.
// No tiles are spawned.
func (e *Engine) Restart() Board {
	e.board = e.initial
	e.score = 0
	e.status = StatusIdle
	return e.State()
}

// MoveLeft slides tiles left. Reports whether the move was valid.
func (e *Engine) MoveLeft() bool { return e.Move(DirLeft) }

// MoveRight slides tiles right. Reports whether the move was valid.
func (e *Engine) MoveRight() bool { return e.Move(DirRight) }

// MoveUp slides tiles up. Reports whether the move was valid.
func (e *Engine) MoveUp() bool { return e.Move(DirUp) }

// MoveDown slides tiles down. Reports whether the move was valid.
func (e *Engine) MoveDown() bool { return e.Move(DirDown) }

// Move slides tiles in dir. A move is valid when it changes the board or
// gains score; invalid moves leave the engine untouched. A valid move
// spawns one tile and then evaluates win before lose.
func (e *Engine) Move(dir Direction) bool {
	if e.status.Terminal() {
		return false
	}

	next, gained, changed := Slide(e.board, dir)
	if !changed && gained == 0 {
		return false
	}

	if e.status == StatusIdle {
		e.status = StatusPlaying
	}

	e.board = next
	e.score += gained
	e.spawnTile()

	switch {
	case HasWinningTile(e.board):
		e.status = StatusWin
	case !CanMove(e.board):
		e.status = StatusLose
	}

	return true
}

// spawnTile places a 2 (or, with probability spawn4Prob, a 4) in a random
// empty cell. Returns false when the board is full.
func (e *Engine) spawnTile() bool {
	emptyCells := EmptyCells(e.board)
	if len(emptyCells) == 0 {
		return false
	}

	cell := emptyCells[e.rng.Intn(len(emptyCells))]

	value := 2
	if e.rng.Float64() < spawn4Prob {
		value = 4
	}

	e.board[cell.Row][cell.Col] = value
	return true
}

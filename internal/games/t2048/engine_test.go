package t2048

import (
	"testing"
)

// scriptedSource replays fixed random values. Once a queue is exhausted it
// returns zero, which picks the first empty cell and spawns a 2.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func rowsOf(b Board) [][]int {
	return b.Rows()
}

func countTiles(b Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewDefaultsToEmpty(t *testing.T) {
	e := New(nil)
	if e.State() != (Board{}) {
		t.Errorf("New(nil) board = %v, want empty", e.State())
	}
	if e.Score() != 0 {
		t.Errorf("New(nil) score = %d, want 0", e.Score())
	}
	if e.Status() != StatusIdle {
		t.Errorf("New(nil) status = %s, want idle", e.Status())
	}
}

func TestNewMalformedBoardFallsBack(t *testing.T) {
	e := New([][]int{{2, 2}, {4, 4}})
	if e.State() != (Board{}) {
		t.Errorf("malformed initial board should fall back to empty, got %v", e.State())
	}
}

func TestNewCopiesInitialBoard(t *testing.T) {
	rows := [][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	}
	e := New(rows)
	rows[0][0] = 1024

	if got := e.State()[0][0]; got != 2 {
		t.Errorf("engine board aliased caller slice: [0][0] = %d, want 2", got)
	}
}

func TestStateReturnsCopy(t *testing.T) {
	e := New(nil, WithSource(&scriptedSource{}))
	e.Start()

	state := e.State()
	state[0][0] = 999
	grid := e.Grid()
	grid[1][1] = 999

	after := e.State()
	if after[0][0] == 999 || after[1][1] == 999 {
		t.Errorf("mutating returned state changed engine board: %v", after)
	}
}

func TestStart(t *testing.T) {
	e := New(nil, WithSeed(7))
	state := e.Start()

	if n := countTiles(state); n != 2 {
		t.Fatalf("Start spawned %d tiles, want 2", n)
	}
	for y := range BoardSize {
		for x := range BoardSize {
			if v := state[y][x]; v != 0 && v != 2 && v != 4 {
				t.Errorf("spawned tile %d at (%d,%d), want 2 or 4", v, y, x)
			}
		}
	}
	if e.Score() != 0 {
		t.Errorf("Start score = %d, want 0", e.Score())
	}
	if e.Status() != StatusPlaying {
		t.Errorf("Start status = %s, want playing", e.Status())
	}
}

func TestStartIgnoresInitialBoard(t *testing.T) {
	initial := [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{2, 4, 8, 16},
		{32, 64, 128, 256},
	}
	e := New(initial, WithSource(&scriptedSource{}))
	state := e.Start()

	if n := countTiles(state); n != 2 {
		t.Errorf("Start should clear the initial board, got %d tiles", n)
	}
}

func TestSpawnValueProbability(t *testing.T) {
	src := &scriptedSource{
		ints:   []int{0, 0},
		floats: []float64{0.05, 0.95},
	}
	e := New(nil, WithSource(src))
	state := e.Start()

	// First spawn takes cell 0 with a 4, second takes the next empty cell with a 2.
	if state[0][0] != 4 {
		t.Errorf("spawn with roll 0.05 = %d, want 4", state[0][0])
	}
	if state[0][1] != 2 {
		t.Errorf("spawn with roll 0.95 = %d, want 2", state[0][1])
	}
}

func TestRestartRestoresInitialBoard(t *testing.T) {
	initial := [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
	}
	e := New(initial, WithSeed(3))
	want := e.State()

	e.MoveLeft()
	e.MoveDown()
	e.MoveRight()

	state := e.Restart()
	if state != want {
		t.Errorf("Restart board = %v, want %v", state, want)
	}
	if e.Score() != 0 {
		t.Errorf("Restart score = %d, want 0", e.Score())
	}
	if e.Status() != StatusIdle {
		t.Errorf("Restart status = %s, want idle", e.Status())
	}
}

func TestRestartWithoutInitialIsEmpty(t *testing.T) {
	e := New(nil, WithSeed(3))
	e.Start()
	e.MoveLeft()

	if state := e.Restart(); state != (Board{}) {
		t.Errorf("Restart without initial board = %v, want empty", state)
	}
}

func TestMoveFromIdlePromotesToPlaying(t *testing.T) {
	e := New([][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSource(&scriptedSource{}))

	if !e.MoveLeft() {
		t.Fatal("MoveLeft should be valid")
	}
	if e.Status() != StatusPlaying {
		t.Errorf("status after first valid move = %s, want playing", e.Status())
	}
}

func TestInvalidMoveLeavesStateUnchanged(t *testing.T) {
	e := New([][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSource(&scriptedSource{}))
	before := e.State()

	if e.MoveLeft() {
		t.Fatal("MoveLeft on left-aligned board should be invalid")
	}
	if e.State() != before {
		t.Errorf("invalid move changed board: %v", e.State())
	}
	if e.Score() != 0 {
		t.Errorf("invalid move changed score: %d", e.Score())
	}
	if e.Status() != StatusIdle {
		t.Errorf("invalid move changed status: %s", e.Status())
	}
}

func TestMoveScoresAndSpawns(t *testing.T) {
	e := New([][]int{
		{2, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSource(&scriptedSource{}))

	if !e.MoveLeft() {
		t.Fatal("MoveLeft should be valid")
	}

	state := e.State()
	if state[0] != [4]int{4, 4, 2, 0} {
		// The spawn lands on the first empty cell, (0,2).
		t.Errorf("row 0 = %v, want [4 4 2 0]", state[0])
	}
	if e.Score() != 8 {
		t.Errorf("score = %d, want 8", e.Score())
	}
}

func TestMoveSumConservation(t *testing.T) {
	e := New(nil, WithSeed(99))
	e.Start()

	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 200 && !e.Status().Terminal(); i++ {
		before := e.State()
		if !e.Move(dirs[i%len(dirs)]) {
			continue
		}

		// Merging two tiles of value v yields one tile of 2v, so only the
		// spawned tile changes the total.
		spawned := Sum(e.State()) - Sum(before)
		if spawned != 2 && spawned != 4 {
			t.Fatalf("move %d: sum grew by %d, want 2 or 4", i, spawned)
		}
	}
}

func TestMoveToWin(t *testing.T) {
	e := New([][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithSource(&scriptedSource{}))

	if !e.MoveLeft() {
		t.Fatal("MoveLeft should be valid")
	}
	if e.Status() != StatusWin {
		t.Fatalf("status = %s, want win", e.Status())
	}
	if e.Score() != 2048 {
		t.Errorf("score = %d, want 2048", e.Score())
	}

	before := e.State()
	if e.MoveRight() {
		t.Error("moves after win should be rejected")
	}
	if e.State() != before || e.Status() != StatusWin {
		t.Error("rejected move after win changed state")
	}
}

func TestWinTakesPriorityOverLose(t *testing.T) {
	// After the merge the only empty cell is filled by the spawn and no
	// adjacent pair remains, yet the 2048 tile means win.
	e := New([][]int{
		{1024, 1024, 8, 16},
		{32, 64, 128, 256},
		{8, 16, 32, 64},
		{128, 256, 512, 4},
	}, WithSource(&scriptedSource{floats: []float64{0.05}}))

	if !e.MoveLeft() {
		t.Fatal("MoveLeft should be valid")
	}
	if e.Status() != StatusWin {
		t.Errorf("status = %s, want win", e.Status())
	}
}

func TestMoveToLose(t *testing.T) {
	// Row 0 merges 2+2 leaving one empty cell; the spawned 2 fills it
	// with no adjacent equal neighbours.
	e := New([][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
	}, WithSource(&scriptedSource{}))

	if !e.MoveLeft() {
		t.Fatal("MoveLeft should be valid")
	}

	want := Board{
		{4, 8, 16, 2},
		{32, 64, 128, 256},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
	}
	if e.State() != want {
		t.Fatalf("board = %v, want %v", rowsOf(e.State()), rowsOf(want))
	}
	if e.Status() != StatusLose {
		t.Fatalf("status = %s, want lose", e.Status())
	}
	if e.MoveUp() || e.MoveDown() || e.MoveLeft() || e.MoveRight() {
		t.Error("moves after lose should be rejected")
	}
}

func TestStartAfterLoseResumesPlay(t *testing.T) {
	e := New([][]int{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{8, 16, 32, 64},
		{128, 256, 512, 1024},
	}, WithSource(&scriptedSource{}))
	e.MoveLeft()

	e.Start()
	if e.Status() != StatusPlaying {
		t.Errorf("status after Start = %s, want playing", e.Status())
	}
}

func TestDeterministicSeed(t *testing.T) {
	e1 := New(nil, WithSeed(12345))
	e2 := New(nil, WithSeed(12345))

	if b1, b2 := e1.Start(), e2.Start(); b1 != b2 {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", b1, b2)
	}
}

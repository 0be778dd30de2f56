package presenter

import (
	"testing"

	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
)

// recordingSurface captures the last drawing call of each kind.
type recordingSurface struct {
	values     t2048.Board
	treatments [t2048.BoardSize][t2048.BoardSize]Treatment
	score      int
	delta      int
	message    Message
	button     ButtonLabel
	renders    int
}

func (s *recordingSurface) DrawCell(row, col, value int, t Treatment) {
	s.values[row][col] = value
	s.treatments[row][col] = t
}

func (s *recordingSurface) DrawScore(score, delta int) {
	s.score = score
	s.delta = delta
	s.renders++
}

func (s *recordingSurface) ShowMessage(m Message) { s.message = m }

func (s *recordingSurface) SetButton(label ButtonLabel) { s.button = label }

// firstCellSource always spawns a 2 in the first empty cell.
type firstCellSource struct{}

func (firstCellSource) Intn(int) int      { return 0 }
func (firstCellSource) Float64() float64 { return 0.5 }

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		prev  int
		cur   int
		first bool
		want  Treatment
	}{
		{"first render", 0, 2, true, TreatNone},
		{"empty stays empty", 0, 0, false, TreatNone},
		{"tile vanished", 4, 0, false, TreatNone},
		{"new tile", 0, 2, false, TreatNew},
		{"merged", 4, 8, false, TreatMerged},
		{"moved", 8, 2, false, TreatMoved},
		{"unchanged", 16, 16, false, TreatNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.prev, tt.cur, tt.first); got != tt.want {
				t.Errorf("Classify(%d, %d, %v) = %s, want %s", tt.prev, tt.cur, tt.first, got, tt.want)
			}
		})
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status  t2048.Status
		message Message
		button  ButtonLabel
	}{
		{t2048.StatusIdle, MessageStart, ButtonStart},
		{t2048.StatusPlaying, MessageNone, ButtonRestart},
		{t2048.StatusWin, MessageWin, ButtonRestart},
		{t2048.StatusLose, MessageLose, ButtonRestart},
	}

	for _, tt := range tests {
		if got := MessageFor(tt.status); got != tt.message {
			t.Errorf("MessageFor(%s) = %d, want %d", tt.status, got, tt.message)
		}
		if got := ButtonFor(tt.status); got != tt.button {
			t.Errorf("ButtonFor(%s) = %s, want %s", tt.status, got, tt.button)
		}
	}
}

func TestInitialRender(t *testing.T) {
	engine := t2048.New(nil, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)

	p.Render()

	if surface.message != MessageStart {
		t.Errorf("idle message = %d, want start", surface.message)
	}
	if surface.button != ButtonStart {
		t.Errorf("idle button = %s, want Start", surface.button)
	}
	if surface.score != 0 || surface.delta != 0 {
		t.Errorf("idle score = %d (+%d), want 0", surface.score, surface.delta)
	}
}

func TestDirectionWhileIdleStartsGame(t *testing.T) {
	engine := t2048.New(nil, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)
	p.Render()

	if !p.HandleDirection(t2048.DirLeft) {
		t.Fatal("direction while idle should render")
	}
	if engine.Status() != t2048.StatusPlaying {
		t.Fatalf("status = %s, want playing", engine.Status())
	}

	// Start spawns into (0,0) and (0,1); the key must not also slide them.
	if surface.values[0][0] != 2 || surface.values[0][1] != 2 {
		t.Errorf("row 0 = %v, want two fresh 2s", surface.values[0])
	}
	if surface.treatments[0][0] != TreatNew || surface.treatments[0][1] != TreatNew {
		t.Errorf("spawned cells treatments = %v, want new", surface.treatments[0])
	}
	if surface.message != MessageNone || surface.button != ButtonRestart {
		t.Errorf("playing message/button = %d/%s", surface.message, surface.button)
	}
}

func TestMoveRendersMergeAndScoreDelta(t *testing.T) {
	engine := t2048.New(nil, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)
	p.Render()
	p.HandleDirection(t2048.DirLeft) // start: [2 2 0 0]

	if !p.HandleDirection(t2048.DirLeft) {
		t.Fatal("valid move should render")
	}

	// [2 2 0 0] -> [4 0 0 0], then spawn at (0,1).
	if surface.values[0][0] != 4 || surface.treatments[0][0] != TreatMerged {
		t.Errorf("cell (0,0) = %d/%s, want 4/merged", surface.values[0][0], surface.treatments[0][0])
	}
	if surface.values[0][1] != 2 || surface.treatments[0][1] != TreatNone {
		t.Errorf("cell (0,1) = %d/%s, want 2/none", surface.values[0][1], surface.treatments[0][1])
	}
	if surface.score != 4 || surface.delta != 4 {
		t.Errorf("score = %d (+%d), want 4 (+4)", surface.score, surface.delta)
	}
}

func TestInvalidMoveDoesNotRender(t *testing.T) {
	engine := t2048.New(nil, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)
	p.HandleDirection(t2048.DirLeft) // start: [2 2 0 0]
	p.HandleDirection(t2048.DirLeft) // [4 2 0 0]
	renders := surface.renders

	if p.HandleDirection(t2048.DirLeft) {
		t.Error("invalid move should not render")
	}
	if surface.renders != renders {
		t.Errorf("renders = %d, want %d", surface.renders, renders)
	}
}

func TestTerminalStatusIgnoresDirections(t *testing.T) {
	engine := t2048.New([][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)

	engine.Move(t2048.DirLeft) // idle -> win
	p.Render()
	if engine.Status() != t2048.StatusWin {
		t.Fatalf("status = %s, want win", engine.Status())
	}

	if p.HandleDirection(t2048.DirRight) {
		t.Error("direction after win should be ignored")
	}
	if surface.message != MessageWin {
		t.Errorf("message = %d, want win", surface.message)
	}
}

func TestPressButtonToggles(t *testing.T) {
	initial := [][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	engine := t2048.New(initial, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)
	p.Render()

	p.PressButton()
	if engine.Status() != t2048.StatusPlaying {
		t.Fatalf("first press status = %s, want playing", engine.Status())
	}
	if surface.button != ButtonRestart {
		t.Errorf("button = %s, want Restart", surface.button)
	}

	p.PressButton()
	if engine.Status() != t2048.StatusIdle {
		t.Fatalf("second press status = %s, want idle", engine.Status())
	}
	if surface.values[0][3] != 8 {
		t.Errorf("restart should restore initial board, cell (0,3) = %d", surface.values[0][3])
	}
	if surface.message != MessageStart || surface.button != ButtonStart {
		t.Errorf("after restart message/button = %d/%s", surface.message, surface.button)
	}
}

func TestHandleAction(t *testing.T) {
	engine := t2048.New(nil, t2048.WithSource(firstCellSource{}))
	surface := &recordingSurface{}
	p := New(engine, surface)
	p.Render()

	if p.HandleAction(core.ActionQuit) {
		t.Error("quit is not a presenter action")
	}
	if !p.HandleAction(core.ActionButton) {
		t.Fatal("button should render")
	}
	if engine.Status() != t2048.StatusPlaying {
		t.Fatalf("status = %s, want playing", engine.Status())
	}

	// [2 2 0 0] slides right into [0 0 0 4].
	if !p.HandleAction(core.ActionRight) {
		t.Fatal("valid move should render")
	}
	if surface.values[0][3] != 4 {
		t.Errorf("row 0 = %v, want merged 4 at the right edge", surface.values[0])
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    t2048.Direction
		ok     bool
	}{
		{core.ActionLeft, t2048.DirLeft, true},
		{core.ActionRight, t2048.DirRight, true},
		{core.ActionUp, t2048.DirUp, true},
		{core.ActionDown, t2048.DirDown, true},
		{core.ActionButton, 0, false},
		{core.ActionNone, 0, false},
	}
	for _, tt := range tests {
		dir, ok := DirectionFor(tt.action)
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("DirectionFor(%s) = %v, %v; want %v, %v", tt.action, dir, ok, tt.dir, tt.ok)
		}
	}
}

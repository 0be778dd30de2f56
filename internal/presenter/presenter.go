// Package presenter turns engine state into front-end drawing calls.
//
// A Presenter is handed its engine and its Surface explicitly; terminal and
// browser front ends differ only in the Surface they supply.
package presenter

import (
	"github.com/vovakirdan/g2048/internal/games/t2048"
)

// Engine is the subset of the game engine the presenter drives.
type Engine interface {
	State() t2048.Board
	Score() int
	Status() t2048.Status
	Start() t2048.Board
	Restart() t2048.Board
	Move(dir t2048.Direction) bool
}

// Treatment is the visual effect applied to a cell on render.
type Treatment int

const (
	TreatNone Treatment = iota
	TreatNew
	TreatMerged
	TreatMoved
)

// String returns the treatment name.
func (t Treatment) String() string {
	switch t {
	case TreatNew:
		return "new"
	case TreatMerged:
		return "merged"
	case TreatMoved:
		return "moved"
	default:
		return "none"
	}
}

// Message is the status banner shown alongside the board.
type Message int

const (
	MessageNone Message = iota
	MessageStart
	MessageWin
	MessageLose
)

// ButtonLabel is the caption of the start/restart button.
type ButtonLabel string

const (
	ButtonStart   ButtonLabel = "Start"
	ButtonRestart ButtonLabel = "Restart"
)

// Surface receives drawing calls from the presenter.
// Timing of any highlight or score animation is up to the implementation.
type Surface interface {
	// DrawCell paints one cell. value 0 means empty.
	DrawCell(row, col, value int, t Treatment)
	// DrawScore shows the total score and, when delta > 0, the amount just gained.
	DrawScore(score, delta int)
	// ShowMessage shows exactly one banner, or none for MessageNone.
	ShowMessage(m Message)
	// SetButton updates the start/restart button.
	SetButton(label ButtonLabel)
}

// Presenter keeps the previous snapshot so each render can tell which
// cells appeared, merged or moved.
type Presenter struct {
	engine    Engine
	surface   Surface
	prev      t2048.Board
	prevScore int
	rendered  bool
}

// New creates a presenter for the given engine and surface.
func New(engine Engine, surface Surface) *Presenter {
	return &Presenter{
		engine:  engine,
		surface: surface,
	}
}

// Classify picks the treatment for a cell that went from prev to cur.
// The first render never animates.
func Classify(prev, cur int, first bool) Treatment {
	if first || cur == 0 {
		return TreatNone
	}
	switch {
	case prev == 0:
		return TreatNew
	case cur == prev*2:
		return TreatMerged
	case cur != prev:
		return TreatMoved
	default:
		return TreatNone
	}
}

// MessageFor maps a status to its banner.
func MessageFor(s t2048.Status) Message {
	switch s {
	case t2048.StatusIdle:
		return MessageStart
	case t2048.StatusWin:
		return MessageWin
	case t2048.StatusLose:
		return MessageLose
	default:
		return MessageNone
	}
}

// ButtonFor maps a status to the button caption.
func ButtonFor(s t2048.Status) ButtonLabel {
	if s == t2048.StatusIdle {
		return ButtonStart
	}
	return ButtonRestart
}

// Render redraws every cell, the score, the banner and the button.
func (p *Presenter) Render() {
	state := p.engine.State()
	first := !p.rendered

	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			val := state[y][x]
			p.surface.DrawCell(y, x, val, Classify(p.prev[y][x], val, first))
		}
	}
	p.prev = state

	score := p.engine.Score()
	delta := 0
	if !first && score > p.prevScore {
		delta = score - p.prevScore
	}
	p.prevScore = score
	p.surface.DrawScore(score, delta)

	status := p.engine.Status()
	p.surface.ShowMessage(MessageFor(status))
	p.surface.SetButton(ButtonFor(status))

	p.rendered = true
}

// HandleDirection reacts to a direction key. While idle the key starts a
// game instead of moving. Returns whether the surface was redrawn.
func (p *Presenter) HandleDirection(dir t2048.Direction) bool {
	switch p.engine.Status() {
	case t2048.StatusIdle:
		p.engine.Start()
		p.Render()
		return true
	case t2048.StatusPlaying:
		moved := p.engine.Move(dir)
		if moved || p.engine.Status() == t2048.StatusLose {
			p.Render()
			return true
		}
	}
	return false
}

// PressButton starts a game from idle and restarts otherwise.
func (p *Presenter) PressButton() {
	if p.engine.Status() == t2048.StatusIdle {
		p.engine.Start()
	} else {
		p.engine.Restart()
	}
	p.Render()
}

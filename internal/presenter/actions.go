package presenter

import (
	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
)

// DirectionFor maps a move action to the board direction it slides.
func DirectionFor(a core.Action) (t2048.Direction, bool) {
	switch a {
	case core.ActionLeft:
		return t2048.DirLeft, true
	case core.ActionRight:
		return t2048.DirRight, true
	case core.ActionUp:
		return t2048.DirUp, true
	case core.ActionDown:
		return t2048.DirDown, true
	}
	return 0, false
}

// HandleAction dispatches a front-end action to the engine.
// Returns whether the surface was redrawn.
func (p *Presenter) HandleAction(a core.Action) bool {
	if dir, ok := DirectionFor(a); ok {
		return p.HandleDirection(dir)
	}
	if a == core.ActionButton {
		p.PressButton()
		return true
	}
	return false
}

// Package web binds the presenter to a browser page when built for
// js/wasm. The class and key tables here are build-independent so they can
// be tested natively.
package web

import (
	"strconv"
	"time"

	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/presenter"
)

// Selectors of the elements the page must provide.
const (
	ScoreSelector        = ".game-score"
	ButtonSelector       = ".button"
	CellSelector         = ".field-cell"
	MessageStartSelector = ".message-start"
	MessageWinSelector   = ".message-win"
	MessageLoseSelector  = ".message-lose"
)

// CSS classes toggled by the surface.
const (
	CellClass          = "field-cell"
	HiddenClass        = "hidden"
	ScoreAdditionClass = "score-addition"
)

// Timers matching the stylesheet animations.
const (
	AnimationCleanup = 300 * time.Millisecond
	ScoreFlash       = 600 * time.Millisecond
)

// animationClasses are cleared from every cell once animations end.
var animationClasses = []string{"new-tile", "merge-tile", "move-tile"}

// AnimationClass returns the class for a treatment, or "" for none.
func AnimationClass(t presenter.Treatment) string {
	switch t {
	case presenter.TreatNew:
		return "new-tile"
	case presenter.TreatMerged:
		return "merge-tile"
	case presenter.TreatMoved:
		return "move-tile"
	}
	return ""
}

// CellClasses returns the full class list of a cell.
func CellClasses(value int, t presenter.Treatment) []string {
	classes := []string{CellClass}
	if value == 0 {
		return classes
	}
	classes = append(classes, CellClass+"--"+strconv.Itoa(value))
	if anim := AnimationClass(t); anim != "" {
		classes = append(classes, anim)
	}
	return classes
}

// CellText returns the text shown in a cell.
func CellText(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}

// ButtonClass returns the state class of the button: "start" or "restart".
func ButtonClass(label presenter.ButtonLabel) string {
	if label == presenter.ButtonStart {
		return "start"
	}
	return "restart"
}

// MessageIndex returns which of the start/win/lose banners is visible,
// or -1 when none is.
func MessageIndex(m presenter.Message) int {
	switch m {
	case presenter.MessageStart:
		return 0
	case presenter.MessageWin:
		return 1
	case presenter.MessageLose:
		return 2
	}
	return -1
}

// ActionFromKey maps a KeyboardEvent.key value to an action.
func ActionFromKey(key string) core.Action {
	switch key {
	case "ArrowLeft":
		return core.ActionLeft
	case "ArrowRight":
		return core.ActionRight
	case "ArrowUp":
		return core.ActionUp
	case "ArrowDown":
		return core.ActionDown
	}
	return core.ActionNone
}

//go:build js && wasm

package web

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
	"time"

	"github.com/vovakirdan/g2048/internal/core"
	"github.com/vovakirdan/g2048/internal/games/t2048"
	"github.com/vovakirdan/g2048/internal/presenter"
)

// ErrMissingElement is returned when the page lacks a required element.
var ErrMissingElement = errors.New("web: missing element")

// Surface draws onto the page elements. Go on js/wasm runs on one thread,
// so timer callbacks and event handlers never race.
type Surface struct {
	score    js.Value
	button   js.Value
	cells    []js.Value
	messages [3]js.Value

	cleanup *time.Timer
}

// NewSurface looks up the page elements in doc.
func NewSurface(doc js.Value) (*Surface, error) {
	s := &Surface{}

	var err error
	if s.score, err = query(doc, ScoreSelector); err != nil {
		return nil, err
	}
	if s.button, err = query(doc, ButtonSelector); err != nil {
		return nil, err
	}
	for i, sel := range []string{MessageStartSelector, MessageWinSelector, MessageLoseSelector} {
		if s.messages[i], err = query(doc, sel); err != nil {
			return nil, err
		}
	}

	list := doc.Call("querySelectorAll", CellSelector)
	if n := list.Get("length").Int(); n != t2048.BoardSize*t2048.BoardSize {
		return nil, fmt.Errorf("%w: want %d %s, found %d", ErrMissingElement, t2048.BoardSize*t2048.BoardSize, CellSelector, n)
	}
	for i := range t2048.BoardSize * t2048.BoardSize {
		s.cells = append(s.cells, list.Index(i))
	}
	return s, nil
}

func query(doc js.Value, selector string) (js.Value, error) {
	el := doc.Call("querySelector", selector)
	if el.IsNull() || el.IsUndefined() {
		return js.Null(), fmt.Errorf("%w: %s", ErrMissingElement, selector)
	}
	return el, nil
}

// DrawCell rewrites a cell's classes and text.
func (s *Surface) DrawCell(row, col, value int, t presenter.Treatment) {
	cell := s.cells[row*t2048.BoardSize+col]
	cell.Set("className", CellClass)
	cell.Set("textContent", CellText(value))
	cell.Call("setAttribute", "data-value", CellText(value))

	classes := CellClasses(value, t)
	if len(classes) > 1 {
		// Force reflow so a repeated animation class restarts.
		cell.Get("offsetWidth")
		args := make([]any, 0, len(classes)-1)
		for _, c := range classes[1:] {
			args = append(args, c)
		}
		cell.Get("classList").Call("add", args...)
	}
	s.scheduleCleanup()
}

// scheduleCleanup clears animation classes once the animations have run.
func (s *Surface) scheduleCleanup() {
	if s.cleanup != nil {
		s.cleanup.Stop()
	}
	s.cleanup = time.AfterFunc(AnimationCleanup, func() {
		args := make([]any, len(animationClasses))
		for i, c := range animationClasses {
			args[i] = c
		}
		for _, cell := range s.cells {
			cell.Get("classList").Call("remove", args...)
		}
	})
}

// DrawScore sets the score and shows a transient "+delta" addition.
func (s *Surface) DrawScore(score, delta int) {
	s.score.Set("textContent", strconv.Itoa(score))
	if delta <= 0 {
		return
	}

	doc := js.Global().Get("document")
	addition := doc.Call("createElement", "div")
	addition.Set("className", ScoreAdditionClass)
	addition.Set("textContent", "+"+strconv.Itoa(delta))
	s.score.Call("appendChild", addition)

	time.AfterFunc(ScoreFlash, func() {
		if parent := addition.Get("parentNode"); !parent.IsNull() {
			parent.Call("removeChild", addition)
		}
	})
}

// ShowMessage hides every banner except the one for m.
func (s *Surface) ShowMessage(m presenter.Message) {
	visible := MessageIndex(m)
	for i, el := range s.messages {
		if i == visible {
			el.Get("classList").Call("remove", HiddenClass)
		} else {
			el.Get("classList").Call("add", HiddenClass)
		}
	}
}

// SetButton updates the button caption and its start/restart class.
func (s *Surface) SetButton(label presenter.ButtonLabel) {
	s.button.Set("textContent", string(label))
	list := s.button.Get("classList")
	if ButtonClass(label) == "start" {
		list.Call("add", "start")
		list.Call("remove", "restart")
	} else {
		list.Call("add", "restart")
		list.Call("remove", "start")
	}
}

// Bind renders the initial state and wires keyboard and button events to
// p. The returned function releases the callbacks.
func Bind(doc js.Value, s *Surface, p *presenter.Presenter) (release func()) {
	onKey := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		action := ActionFromKey(args[0].Get("key").String())
		if action == core.ActionNone {
			return nil
		}
		args[0].Call("preventDefault")
		p.HandleAction(action)
		return nil
	})
	onClick := js.FuncOf(func(js.Value, []js.Value) any {
		p.PressButton()
		return nil
	})

	doc.Call("addEventListener", "keydown", onKey)
	s.button.Call("addEventListener", "click", onClick)
	p.Render()

	return func() {
		doc.Call("removeEventListener", "keydown", onKey)
		s.button.Call("removeEventListener", "click", onClick)
		onKey.Release()
		onClick.Release()
	}
}

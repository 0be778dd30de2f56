//go:build js && wasm

// wasm is the browser build of g2048. It expects the page served from
// web/static and drives the game through the shared presenter.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o web/static/game.wasm ./cmd/wasm
package main

import (
	"syscall/js"
	"time"

	"github.com/vovakirdan/g2048/internal/games/t2048"
	"github.com/vovakirdan/g2048/internal/platform/web"
	"github.com/vovakirdan/g2048/internal/presenter"
)

func main() {
	doc := js.Global().Get("document")

	surface, err := web.NewSurface(doc)
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		return
	}

	engine := t2048.New(nil, t2048.WithSeed(time.Now().UnixNano()))
	p := presenter.New(engine, surface)
	web.Bind(doc, surface, p)

	println("g2048 wasm initialized")
	select {}
}

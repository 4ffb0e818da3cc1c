// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/boot"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform/ebitenplat"
	"go-space-invaders/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *ebitenplat.Renderer
	input          *ebitenplat.Input
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.stateMachine.Update(deltaTime, a.input)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Target = screen
	a.stateMachine.Draw(a.renderer)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts := boot.RegisterFlags(flag.CommandLine)
	flag.Parse()
	boot.StartPprof(opts.PprofAddr)

	catalog := assets.NewCatalog(opts.AssetsDir)
	loader := ebitenplat.NewLoader(catalog, audio.NewBank())
	sm, err := boot.Setup(opts, loader, ebitenplat.NewAudio())
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	app := &AppGame{
		stateMachine:   sm,
		renderer:       &ebitenplat.Renderer{},
		input:          ebitenplat.NewInput(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
	sm.Shutdown()
	catalog.Cleanup()
}

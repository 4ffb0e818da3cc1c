// cmd/game_raylib/main.go
package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/audio"
	"go-space-invaders/internal/boot"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/platform/raylibplat"
)

func main() {
	// --- Флаги командной строки ---
	opts := boot.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle)
	defer rl.CloseWindow()
	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	// Escape обрабатывает игра, а не raylib
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	boot.StartPprof(opts.PprofAddr)

	// --- Загрузка ресурсов и машины состояний ---
	catalog := assets.NewCatalog(opts.AssetsDir)
	loader := raylibplat.NewLoader(catalog, audio.NewBank())
	defer loader.Close()
	player := raylibplat.NewAudio()
	sm, err := boot.Setup(opts, loader, player)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	renderer := raylibplat.Renderer{}
	input := raylibplat.Input{}
	lastUpdateTime := time.Now()

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() && !sm.ShouldQuit() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Update(deltaTime, input)
		player.Update()

		rl.BeginDrawing()
		sm.Draw(renderer)
		if config.Debug {
			rl.DrawFPS(10, config.ScreenHeight-20)
		}
		rl.EndDrawing()
	}

	sm.Shutdown()
	catalog.Cleanup()
}

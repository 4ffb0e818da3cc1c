// internal/app/game.go
package app

import (
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/interfaces"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/system"
)

var _ interfaces.Game = (*Game)(nil)

// Game описывает одну игровую сессию (мир, системы и итог партии).
type Game struct {
	World           *entity.World
	Library         *platform.Library
	Audio           platform.Audio
	EventDispatcher *event.Dispatcher

	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	SwarmSystem      *system.SwarmSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	RenderSystem     *system.RenderSystem

	over    bool
	victory bool
}

// NewGame initializes a new game session. Call Start before the first Update.
func NewGame(lib *platform.Library, audio platform.Audio, settings defs.WaveSettings) *Game {
	player := entity.NewPlayer(lib.Ship, config.ScreenWidth, config.ScreenHeight)
	world := entity.NewWorld(player, config.ScreenWidth, config.ScreenHeight)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		World:           world,
		Library:         lib,
		Audio:           audio,
		EventDispatcher: eventDispatcher,
	}
	g.PlayerSystem = system.NewPlayerSystem(world, lib.Bullet, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.SwarmSystem = system.NewSwarmSystem(world)
	g.WaveSystem = system.NewWaveSystem(world, settings, lib.Enemy, g.SwarmSystem, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher, config.KillScore, config.EscapePenalty)
	g.RenderSystem = system.NewRenderSystem(world)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(listener,
		event.BulletFired,
		event.EnemyDestroyed,
		event.EnemyEscaped,
		event.WaveStarted,
		event.WaveCleared,
		event.WavesCompleted,
	)

	return g
}

// GameEventListener озвучивает события боя и фиксирует победу.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.BulletFired:
		g.Audio.PlaySound(g.Library.Laser)
	case event.EnemyDestroyed:
		g.Audio.PlaySound(g.Library.Explosion)
	case event.EnemyEscaped:
		g.Audio.PlaySound(g.Library.Hit)
	case event.WaveStarted:
		log.Printf("Wave %v started", e.Data)
	case event.WaveCleared:
		g.World.Stats.WavesCleared++
	case event.WavesCompleted:
		g.World.Stats.WavesCleared++
		g.finish(true)
	}
}

// Start resets the session and launches wave 1 immediately.
func (g *Game) Start() {
	g.World.Reset()
	g.over = false
	g.victory = false
	g.WaveSystem.StartNextWave()
	log.Println("New game started")
}

// Update advances one frame of play. Bullets and the ship move per frame,
// the swarm and the wave cooldown use deltaTime.
func (g *Game) Update(deltaTime float64, in system.Controls) {
	if g.over {
		return
	}

	g.PlayerSystem.Update(in)
	g.ProjectileSystem.Update()
	g.WaveSystem.Update(deltaTime)

	g.CombatSystem.Resolve()
	g.ProjectileSystem.Cull()
	g.CombatSystem.RemoveEscaped()

	if g.over {
		return
	}
	g.WaveSystem.CheckCleared()

	if !g.World.Stats.Alive() && !g.over {
		g.finish(false)
	}
}

func (g *Game) finish(victory bool) {
	if g.over {
		return
	}
	g.over = true
	g.victory = victory
	if victory {
		log.Printf("Victory! Score %d", g.World.Stats.Score)
	} else {
		log.Printf("Defeat on wave %d. Score %d", g.World.Wave.Number, g.World.Stats.Score)
	}
}

// Over reports whether the run has ended.
func (g *Game) Over() bool { return g.over }

// Victory reports whether the run ended with every wave beaten.
func (g *Game) Victory() bool { return g.victory }

// Stats returns a copy of the score and health.
func (g *Game) Stats() component.Stats { return g.World.Stats }

// CurrentWave returns a copy of the wave state.
func (g *Game) CurrentWave() component.Wave { return *g.World.Wave }

func (g *Game) Draw(r platform.Renderer) {
	g.RenderSystem.Draw(r)
}

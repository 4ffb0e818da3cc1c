// Package boot wires a ready-to-run state machine from command-line options.
// Both frame drivers (ebiten and raylib) share it.
package boot

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-space-invaders/internal/app"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/platform"
	"go-space-invaders/internal/state"
)

// Options: флаги командной строки.
type Options struct {
	WavesPath string
	AssetsDir string
	Mute      bool
	Debug     bool
	ShowMenu  bool
	PprofAddr string
	Seed      int64
}

// RegisterFlags declares the flags on fs and returns where they land.
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.WavesPath, "waves", "", "JSON file overriding wave settings")
	fs.StringVar(&o.AssetsDir, "assets", "assets", "directory with sprite overrides (<name>.png)")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound and music")
	fs.BoolVar(&o.Debug, "debug", false, "log wave details")
	fs.BoolVar(&o.ShowMenu, "menu", true, "start from the main menu; false starts a game right away")
	fs.StringVar(&o.PprofAddr, "pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	fs.Int64Var(&o.Seed, "seed", 0, "starfield seed, 0 picks one from the clock")
	return o
}

// Setup loads settings and resources and returns the machine in its first state.
func Setup(o *Options, loader platform.Loader, audio platform.Audio) (*state.StateMachine, error) {
	config.Debug = o.Debug

	settings := defs.DefaultWaveSettings()
	if o.WavesPath != "" {
		var err error
		if settings, err = defs.LoadWaveSettings(o.WavesPath); err != nil {
			return nil, err
		}
	}

	lib, err := platform.LoadLibrary(loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	if o.Mute {
		audio = platform.Silent{}
		log.Println("Sound muted")
	}

	game := app.NewGame(lib, audio, settings)
	ctx := state.NewContext(lib, audio, game, settings.WavesToBeat, o.Seed)

	sm := state.NewStateMachine()
	if o.ShowMenu {
		sm.SetState(state.NewMenuState(sm, ctx))
	} else {
		log.Println("---" + "Starting game directly" + "---")
		sm.SetState(state.NewGameState(sm, ctx, true))
	}
	return sm, nil
}

// StartPprof serves the profiler in the background when addr is set.
func StartPprof(addr string) {
	if addr == "" {
		return
	}
	go func() {
		log.Println(http.ListenAndServe(addr, nil))
	}()
}

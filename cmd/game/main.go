// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-wave-brawler/internal/app"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/sink"
	"go-wave-brawler/internal/state"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newLogger(pretty bool, level string) zerolog.Logger {
	var log zerolog.Logger
	if pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	} else {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.Level(lvl)
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	enemiesPath := flag.String("enemies", "", "YAML file replacing the built-in enemy definitions")
	account := flag.String("account", "", "account the session result is saved under; empty plays as a guest")
	resultsPath := flag.String("results", "", "append session results to this NDJSON file")
	pretty := flag.Bool("pretty", false, "human-readable console logs")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	tuning, err := config.LoadTuning(*configPath)
	log := newLogger(*pretty, tuning.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load tuning")
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatal().Err(err).Str("path", *enemiesPath).Msg("failed to load enemy definitions")
		}
	}
	if *pprofAddr != "" {
		go func() {
			log.Error().Err(http.ListenAndServe(*pprofAddr, nil)).Msg("pprof server stopped")
		}()
	}

	if *account == "" {
		*account = "guest-" + uuid.NewString()
	}

	sinks := sink.Multi{sink.NewLog(log)}
	if *resultsPath != "" {
		file, err := sink.NewJSONFile(*resultsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open results sink")
		}
		sinks = append(sinks, file)
	}

	opts := app.Options{
		Tuning:  tuning,
		Account: *account,
		Sink:    interfaces.ResultSink(sinks),
		Logger:  log,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, opts))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Blood Road")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop stopped")
	}
}

package main

import (
	"flag"
	"image"
	"os"
	"time"

	"github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/fonts"
	"github.com/automoto/flappy-cat/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// quitter is implemented by scenes that can ask to close the game.
type quitter interface {
	QuitRequested() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlayScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.QuitRequested() {
		log.Info().Msg("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "draw colliders and the clock overlay")
	invincible := flag.Bool("invincible", false, "ignore pipe and ground contacts")
	seed := flag.Int64("seed", 0, "pipe layout seed, 0 picks one from the clock")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfgErr := config.Load()
	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Err(err).Str("level", config.LogLevel).Msg("unknown log level")
	}
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("some settings were ignored")
	}

	// Flags win over the environment
	if *debug {
		config.Debug.ShowColliders = true
	}
	if *invincible {
		config.Debug.Invincible = true
	}
	if *seed != 0 {
		config.C.Seed = *seed
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Game.TargetTPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

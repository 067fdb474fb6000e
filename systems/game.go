package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// rampEpsilon absorbs float drift in the summed unscaled deltas.
const rampEpsilon = 1e-9

// GameController is the part of the coordinator gameplay systems call into.
type GameController interface {
	StartGame()
	TriggerGameOver()
}

// SceneReloader rebuilds the play scene from scratch.
type SceneReloader interface {
	ReloadScene()
}

var gameSingleton = NewSingleton(components.Game, func() components.GameData {
	return components.GameData{State: cfg.NotStarted}
})

// GetOrCreateGame returns the singleton Game component, creating if needed
func GetOrCreateGame(e *ecs.ECS) *components.GameData {
	return gameSingleton.Get(e.World)
}

// Coordinator owns the run state of one play world: start, the slow-to-stop
// game over and restart.
type Coordinator struct {
	ecs      *ecs.ECS
	reloader SceneReloader
}

func NewCoordinator(e *ecs.ECS, reloader SceneReloader) *Coordinator {
	return &Coordinator{ecs: e, reloader: reloader}
}

func (c *Coordinator) State() cfg.RunState {
	return GetOrCreateGame(c.ecs).State
}

// StartGame leaves NotStarted: the start prompt fades out and simulation time
// resumes. Later calls do nothing.
func (c *Coordinator) StartGame() {
	game := GetOrCreateGame(c.ecs)
	if game.State != cfg.NotStarted {
		return
	}
	game.State = cfg.Running

	if startPromptSingleton.Exists(c.ecs.World) {
		prompt := startPromptSingleton.Entry(c.ecs.World)
		KillTweens(prompt)
		TweenAlpha(prompt, 0, cfg.Game.StartFadeDuration, ease.Linear)
	}
	SetTimeScale(c.ecs, 1)

	log.Info().Msg("game started")
}

// RestartGame throws the world away and builds a fresh one.
func (c *Coordinator) RestartGame() {
	log.Info().Stringer("state", c.State()).Msg("restarting")
	if c.reloader != nil {
		c.reloader.ReloadScene()
	}
}

// TriggerGameOver stops the run over the configured stop time.
func (c *Coordinator) TriggerGameOver() {
	c.TriggerGameOverAfter(cfg.Game.StopTimeOnGameOver)
}

// TriggerGameOverAfter enters GameOver, stops the music and starts slowing
// time to a halt over stop seconds of unscaled time. Only the first call has
// an effect.
func (c *Coordinator) TriggerGameOverAfter(stop float64) {
	game := GetOrCreateGame(c.ecs)
	if game.State == cfg.GameOverState {
		return
	}
	game.State = cfg.GameOverState
	StopMusic(c.ecs)

	log.Info().Float64("stop", stop).Msg("game over")

	game.Ramp = components.RampData{Active: true, Timer: stop, Duration: stop}
	if stop <= 0 {
		finishRamp(c.ecs, game)
	}
}

// CancelSlowToStop aborts a running ramp. Time keeps its current scale and
// the game over panel is not shown.
func (c *Coordinator) CancelSlowToStop() {
	game := GetOrCreateGame(c.ecs)
	if game.Ramp.Active {
		log.Debug().Float64("remaining", game.Ramp.Timer).Msg("slow-to-stop cancelled")
	}
	game.Ramp.Active = false
}

// QuitGame asks the host to close the game.
func (c *Coordinator) QuitGame() {
	GetOrCreateGame(c.ecs).QuitRequested = true
}

func (c *Coordinator) QuitRequested() bool {
	return GetOrCreateGame(c.ecs).QuitRequested
}

// UpdateGame ticks the slow-to-stop ramp on unscaled time, since it drives
// the scale of the other clock.
func UpdateGame(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	if !game.Ramp.Active {
		return
	}

	clock := GetOrCreateClock(e)
	game.Ramp.Timer -= clock.UnscaledDeltaTime
	if game.Ramp.Timer > rampEpsilon {
		clock.TimeScale = game.Ramp.Timer / game.Ramp.Duration
		return
	}
	finishRamp(e, game)
}

func finishRamp(e *ecs.ECS, game *components.GameData) {
	game.Ramp.Active = false
	game.Ramp.Timer = 0
	SetTimeScale(e, 0)
	ShowGameOver(e)
	PlaySFX(e, cfg.SoundLose)
}

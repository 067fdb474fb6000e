package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame creates the coordinator's state entity.
func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{State: cfg.NotStarted})
	return game
}

// CreateClock creates the world clock. Simulation time starts frozen until
// the first jump.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		TimeScale:      0,
		FixedDeltaTime: cfg.Clock.FixedDeltaTime,
	})
	return clock
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	audio := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(audio, components.AudioData{
		PendingSFX: make([]cfg.SoundID, 0, 8),
	})
	return audio
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateRandom creates the world's random source. A zero seed picks one from
// the wall clock.
func CreateRandom(ecs *ecs.ECS, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := archetypes.Random.Spawn(ecs)
	components.Random.SetValue(random, components.RandomData{
		Rand: rand.New(rand.NewSource(seed)),
	})
	return random
}

// CreateStartPrompt creates the "tap to start" element, fully visible.
func CreateStartPrompt(ecs *ecs.ECS) *donburi.Entry {
	prompt := archetypes.StartPrompt.Spawn(ecs)
	components.StartPrompt.SetValue(prompt, components.StartPromptData{Text: cfg.Game.StartPromptText})
	components.Fade.SetValue(prompt, components.FadeData{Visible: true, Alpha: 1})
	return prompt
}

// CreateGameOver creates the hidden game over panel.
func CreateGameOver(ecs *ecs.ECS) *donburi.Entry {
	panel := archetypes.GameOver.Spawn(ecs)
	components.GameOver.SetValue(panel, components.GameOverData{
		SelectedOption: components.GameOverRestart,
	})
	return panel
}

package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var gameOverSingleton = NewSingleton(components.GameOver, func() components.GameOverData {
	return components.GameOverData{SelectedOption: components.GameOverRestart}
})

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	return gameOverSingleton.Get(e.World)
}

// ShowGameOver enables the panel, fades it in and slides it up from below.
func ShowGameOver(e *ecs.ECS) {
	entry := gameOverSingleton.Entry(e.World)
	gameOver := components.GameOver.Get(entry)
	gameOver.Shown = true
	gameOver.ShowCount++

	ensureFade(entry)
	fade := components.Fade.Get(entry)
	fade.Visible = true
	fade.Alpha = 0
	fade.OffsetY = 0

	KillTweens(entry)
	TweenAlpha(entry, 1, cfg.GameOver.FadeDuration, ease.Linear)
	TweenOffsetYFrom(entry, cfg.GameOver.SlideFromOffset, cfg.GameOver.SlideDuration, ease.OutBack)
}

// NewUpdateGameOver handles the panel's keyboard shortcuts. The buttons call
// the same coordinator methods.
func NewUpdateGameOver(game *Coordinator) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		if GetAction(input, cfg.ActionQuit).JustPressed {
			game.QuitGame()
			return
		}

		gameOver := GetOrCreateGameOver(e)
		if !gameOver.Shown {
			return
		}

		if GetAction(input, cfg.ActionRestart).JustPressed {
			gameOver.SelectedOption = components.GameOverRestart
			SelectGameOverOption(e, game, gameOver.SelectedOption)
		}
	}
}

// SelectGameOverOption runs a panel option.
func SelectGameOverOption(e *ecs.ECS, game *Coordinator, option components.GameOverOption) {
	PlaySFX(e, cfg.SoundMenuSelect)
	switch option {
	case components.GameOverRestart:
		game.RestartGame()
	case components.GameOverQuit:
		game.QuitGame()
	}
}

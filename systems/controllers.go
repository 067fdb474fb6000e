package systems

import (
	"github.com/automoto/flappy-cat/components"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

var startPromptSingleton = NewSingleton(components.StartPrompt, func() components.StartPromptData {
	return components.StartPromptData{}
})

// CreateControllers spawns the world's controller entities and registers each
// with its singleton. When an instance already exists the new copy is removed,
// so calling it twice leaves one of each.
func CreateControllers(e *ecs.ECS, seed int64) {
	w := e.World
	gameSingleton.Register(w, factory.CreateGame(e))
	clockSingleton.Register(w, factory.CreateClock(e))
	audioSingleton.Register(w, factory.CreateAudio(e))
	inputSingleton.Register(w, factory.CreateInput(e))
	randomSingleton.Register(w, factory.CreateRandom(e, seed))
	startPromptSingleton.Register(w, factory.CreateStartPrompt(e))
	gameOverSingleton.Register(w, factory.CreateGameOver(e))
}

// ResetControllers forgets every registered instance, releasing the world
// they belong to.
func ResetControllers() {
	gameSingleton.Reset()
	clockSingleton.Reset()
	audioSingleton.Reset()
	inputSingleton.Reset()
	randomSingleton.Reset()
	startPromptSingleton.Reset()
	gameOverSingleton.Reset()
}

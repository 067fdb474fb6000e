package archetypes

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.Collider,
		components.Animator,
	)
	Pipes = newArchetype(
		tags.Pipes,
		components.Obstacle,
		components.Transform,
		components.Collider,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Transform,
	)
	Scroller = newArchetype(
		tags.Background,
		components.Scroller,
		components.Transform,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Transform,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
	Game = newArchetype(
		components.Game,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Input = newArchetype(
		components.Input,
	)
	Random = newArchetype(
		components.Random,
	)
	StartPrompt = newArchetype(
		components.StartPrompt,
		components.Fade,
		components.Tween,
	)
	GameOver = newArchetype(
		components.GameOver,
		components.Fade,
		components.Tween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

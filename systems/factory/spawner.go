package factory

import (
	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpawner places the pipe spawner. Its timer starts full so the first
// pair appears at scene load, before time runs.
func CreateSpawner(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Transform.SetValue(spawner, components.TransformData{Position: pos})
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Interval: cfg.Pipes.SpawnInterval,
		Timer:    cfg.Pipes.SpawnInterval,
	})
	return spawner
}

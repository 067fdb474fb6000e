package factory

import (
	"math/rand"

	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// NewObstacle rolls the random part of a pipe pair: the gap center within
// ±YVariability and, with ChanceOfYMovement, a vertical oscillation. An
// oscillating pipe never starts below -YMovementDiff.
func NewObstacle(rng *rand.Rand) components.ObstacleData {
	pc := cfg.Pipes
	obstacle := components.ObstacleData{
		OriginY:   -pc.YVariability + rng.Float64()*2*pc.YVariability,
		Amplitude: pc.YMovementDiff,
		Period:    pc.Period,
		Speed:     pc.MovementSpeed,
	}
	if rng.Float64() < pc.ChanceOfYMovement {
		obstacle.Oscillate = true
		obstacle.OriginY = max(obstacle.OriginY, -pc.YMovementDiff)
	}
	return obstacle
}

// CreatePipes spawns a pipe pair with its gap centered at (x, OriginY).
func CreatePipes(ecs *ecs.ECS, x float64, obstacle components.ObstacleData) *donburi.Entry {
	pipes := archetypes.Pipes.Spawn(ecs)

	components.Obstacle.SetValue(pipes, obstacle)
	components.Transform.SetValue(pipes, components.TransformData{
		Position: math.Vec2{X: x, Y: obstacle.OriginY},
	})

	pc := cfg.Pipes
	reach := pc.Gap/2 + pc.Length/2
	size := math.Vec2{X: pc.Width, Y: pc.Length}
	attachColliders(ecs, pipes, tags.CategoryObstacle,
		components.ColliderShape{Offset: math.Vec2{Y: -reach}, Size: size},
		components.ColliderShape{Offset: math.Vec2{Y: reach}, Size: size},
	)

	return pipes
}

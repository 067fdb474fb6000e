package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/gamemath"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var randomSingleton = NewSingleton(components.Random, func() components.RandomData {
	return components.RandomData{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
})

// GetOrCreateRandom returns the world's random source, creating if needed
func GetOrCreateRandom(e *ecs.ECS) *rand.Rand {
	return randomSingleton.Get(e.World).Rand
}

// UpdateSpawners emits one pipe pair per Interval of scaled time. The
// overshoot carries into the next interval, so the count does not depend on
// the frame rate. A full timer spawns even while time is frozen, which puts
// the first pair out at scene load. Must run after UpdateObstacles.
func UpdateSpawners(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	dt := max(clock.DeltaTime, 0)

	type spawn struct {
		x        float64
		obstacle components.ObstacleData
	}
	var due []spawn

	components.Spawner.Each(e.World, func(entry *donburi.Entry) {
		spawner := components.Spawner.Get(entry)
		if spawner.Interval <= 0 {
			return
		}

		spawner.Timer += dt
		pos := components.Transform.Get(entry).Position
		for spawner.Timer >= spawner.Interval {
			spawner.Timer -= spawner.Interval
			spawner.Spawned++

			// A pair due earlier in a long frame has already travelled
			obstacle := factory.NewObstacle(GetOrCreateRandom(e))
			due = append(due, spawn{x: pos.X - obstacle.Speed*spawner.Timer, obstacle: obstacle})
		}
	})

	for _, s := range due {
		pipes := factory.CreatePipes(e, s.x, s.obstacle)
		components.Transform.Get(pipes).Position.Y = ObstacleY(s.obstacle, clock.Time)
		log.Debug().
			Float64("y", s.obstacle.OriginY).
			Bool("oscillate", s.obstacle.Oscillate).
			Msg("pipes spawned")
	}
}

// UpdateObstacles scrolls pipes left and applies their oscillation.
func UpdateObstacles(e *ecs.ECS) {
	clock := GetOrCreateClock(e)

	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obstacle := components.Obstacle.Get(entry)
		transform := components.Transform.Get(entry)

		transform.Position.X -= obstacle.Speed * clock.DeltaTime
		if obstacle.Oscillate {
			transform.Position.Y = ObstacleY(*obstacle, clock.Time)
		}
	})
}

// ObstacleY is the gap center of a pipe pair at scaled world time t. All
// oscillating pairs share the world clock, so they swing in phase.
func ObstacleY(o components.ObstacleData, t float64) float64 {
	if !o.Oscillate {
		return o.OriginY
	}
	return gamemath.Oscillate(o.OriginY, o.Amplitude, o.Period, t)
}

// CullObstacles removes pipes that scrolled past DespawnX.
func CullObstacles(e *ecs.ECS) {
	var gone []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if components.Transform.Get(entry).Position.X < cfg.Pipes.DespawnX {
			gone = append(gone, entry)
		}
	})

	for _, entry := range gone {
		factory.Destroy(e, entry)
	}
}

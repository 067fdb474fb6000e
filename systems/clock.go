package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi/ecs"
)

var clockSingleton = NewSingleton(components.Clock, func() components.ClockData {
	return components.ClockData{
		TimeScale:      1,
		FixedDeltaTime: cfg.Clock.FixedDeltaTime,
	}
})

// GetOrCreateClock returns the world clock, creating it if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	return clockSingleton.Get(e.World)
}

// UpdateClock advances the clock by one ebiten tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	AdvanceClock(GetOrCreateClock(e), 1/float64(cfg.Game.TargetTPS))
}

// AdvanceClock moves both time sources forward by unscaled seconds.
func AdvanceClock(clock *components.ClockData, unscaled float64) {
	clock.UnscaledDeltaTime = unscaled
	clock.UnscaledTime += unscaled
	clock.DeltaTime = unscaled * clock.TimeScale
	clock.Time += clock.DeltaTime
	clock.FixedAccumulator += clock.DeltaTime
}

// SetTimeScale changes how fast simulation time runs relative to wall time.
func SetTimeScale(e *ecs.ECS, scale float64) {
	clock := GetOrCreateClock(e)
	if scale < 0 {
		scale = 0
	}
	clock.TimeScale = scale
}

// NewFixedUpdate wraps physics-rate systems: each call runs the whole list once
// per FixedDeltaTime of accumulated scaled time. Leftover time beyond
// MaxFixedStepsPerFrame steps is dropped.
func NewFixedUpdate(steps ...ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		clock := GetOrCreateClock(e)
		if clock.FixedDeltaTime <= 0 {
			return
		}

		ran := 0
		for clock.FixedAccumulator >= clock.FixedDeltaTime {
			if ran == cfg.Clock.MaxFixedStepsPerFrame {
				clock.FixedAccumulator = 0
				return
			}
			for _, step := range steps {
				step(e)
			}
			clock.FixedAccumulator -= clock.FixedDeltaTime
			clock.FixedSteps++
			ran++
		}
	}
}

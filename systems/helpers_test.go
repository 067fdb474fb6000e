package systems

import (
	"testing"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type fakeInput struct {
	pressed map[cfg.ActionID]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: make(map[cfg.ActionID]bool)}
}

func (f *fakeInput) Pressed(action cfg.ActionID) bool {
	return f.pressed[action]
}

type fakeReloader struct {
	reloads int
}

func (r *fakeReloader) ReloadScene() {
	r.reloads++
}

// newTestWorld builds the controller entities of a play world without any
// ebiten resources.
func newTestWorld(t *testing.T) (*ecs.ECS, *Coordinator, *fakeReloader) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	CreateControllers(e, 1)

	reloader := &fakeReloader{}
	return e, NewCoordinator(e, reloader), reloader
}

func newTestPlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	return factory.CreatePlayer(e, math.Vec2{X: x, Y: y})
}

// tick advances the clock by dt of wall time and runs systems in order.
func tick(e *ecs.ECS, dt float64, steps ...ecs.System) {
	AdvanceClock(GetOrCreateClock(e), dt)
	for _, step := range steps {
		step(e)
	}
}

func countSound(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}

func countObstacles(e *ecs.ECS) int {
	n := 0
	components.Obstacle.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

package systems

import (
	gomath "math"
	"math/rand"
	"sort"
	"testing"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// runSpawner simulates total seconds of running time in frames of dt and
// returns the pipe x positions at the end.
func runSpawner(t *testing.T, dt, total float64) ([]float64, int) {
	t.Helper()
	e, _, _ := newTestWorld(t)
	SetTimeScale(e, 1)
	spawner := factory.CreateSpawner(e, math.Vec2{X: 4})

	for elapsed := 0.0; elapsed < total; elapsed += dt {
		tick(e, dt, UpdateObstacles, UpdateSpawners)
	}

	var xs []float64
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		xs = append(xs, components.Transform.Get(entry).Position.X)
	})
	sort.Float64s(xs)
	return xs, components.Spawner.Get(spawner).Spawned
}

func TestSpawnCountIndependentOfFrameRate(t *testing.T) {
	slow, slowCount := runSpawner(t, 1.5, 12)
	fast, fastCount := runSpawner(t, 0.25, 12)

	// One pair right away, then one every interval
	want := 1 + int(12/cfg.Pipes.SpawnInterval)
	if slowCount != want || fastCount != want {
		t.Fatalf("spawned %d at 1.5s frames and %d at 0.25s frames, want %d", slowCount, fastCount, want)
	}
	if len(slow) != want || len(fast) != want {
		t.Fatalf("live pipes %d and %d, want %d", len(slow), len(fast), want)
	}
	for i := range slow {
		if gomath.Abs(slow[i]-fast[i]) > 1e-9 {
			t.Errorf("pipe %d at x %v vs %v", i, slow[i], fast[i])
		}
	}
}

func TestSpawnerPlacesFirstPairWhileFrozen(t *testing.T) {
	e, _, _ := newTestWorld(t)
	spawner := factory.CreateSpawner(e, math.Vec2{X: 4})

	for i := 0; i < 600; i++ {
		tick(e, 1.0/60, UpdateObstacles, UpdateSpawners)
	}
	if n := countObstacles(e); n != 1 {
		t.Fatalf("%d pipes before the game started, want the first pair only", n)
	}
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if x := components.Transform.Get(entry).Position.X; x != 4 {
			t.Errorf("first pair at x %v, want the spawner's 4", x)
		}
	})
	data := components.Spawner.Get(spawner)
	if data.Spawned != 1 || data.Timer != 0 {
		t.Errorf("spawner = %+v, want one spawn and an empty timer", data)
	}
}

func TestObstaclesScrollLeft(t *testing.T) {
	e, _, _ := newTestWorld(t)
	SetTimeScale(e, 1)
	pipes := factory.CreatePipes(e, 4, components.ObstacleData{OriginY: 1, Speed: 1})

	tick(e, 0.5, UpdateObstacles)
	pos := components.Transform.Get(pipes).Position
	if gomath.Abs(pos.X-3.5) > 1e-9 || pos.Y != 1 {
		t.Errorf("position = %+v, want (3.5, 1)", pos)
	}
}

func TestOscillationIsPeriodic(t *testing.T) {
	o := components.ObstacleData{
		OriginY:   0.3,
		Oscillate: true,
		Amplitude: cfg.Pipes.YMovementDiff,
		Period:    cfg.Pipes.Period,
	}
	for _, at := range []float64{0, 0.4, 1.3, 2.2, 5.9} {
		a := ObstacleY(o, at)
		b := ObstacleY(o, at+o.Period)
		if gomath.Abs(a-b) > 1e-9 {
			t.Errorf("t %v: %v vs %v one period later", at, a, b)
		}
		if a < o.OriginY-o.Amplitude-1e-9 {
			t.Errorf("t %v: %v below the swing", at, a)
		}
	}

	o.Oscillate = false
	if got := ObstacleY(o, 0.75); got != o.OriginY {
		t.Errorf("still pipe y = %v, want origin", got)
	}
}

func TestOscillatingPipesShareClock(t *testing.T) {
	e, _, _ := newTestWorld(t)
	SetTimeScale(e, 1)
	o := components.ObstacleData{
		OriginY:   0.5,
		Oscillate: true,
		Amplitude: 1,
		Period:    4,
		Speed:     1,
	}

	early := factory.CreatePipes(e, 3, o)
	tick(e, 0.7, UpdateObstacles)
	late := factory.CreatePipes(e, 3, o)
	tick(e, 0.3, UpdateObstacles)

	// One second into a four second period is the top of the swing
	want := o.OriginY + o.Amplitude
	for name, entry := range map[string]*donburi.Entry{"early": early, "late": late} {
		if y := components.Transform.Get(entry).Position.Y; gomath.Abs(y-want) > 1e-9 {
			t.Errorf("%s pair y = %v, want %v", name, y, want)
		}
	}
}

func TestNewObstacleRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pc := cfg.Pipes
	oscillating := 0

	for i := 0; i < 5000; i++ {
		o := factory.NewObstacle(rng)
		if o.OriginY < -pc.YVariability || o.OriginY > pc.YVariability {
			t.Fatalf("origin %v outside ±%v", o.OriginY, pc.YVariability)
		}
		if o.Speed != pc.MovementSpeed {
			t.Fatalf("unexpected obstacle %+v", o)
		}
		if !o.Oscillate {
			continue
		}
		oscillating++
		if o.OriginY < -pc.YMovementDiff {
			t.Fatalf("oscillating origin %v below -%v", o.OriginY, pc.YMovementDiff)
		}
	}
	if oscillating == 0 || oscillating == 5000 {
		t.Errorf("oscillating pairs %d of 5000", oscillating)
	}
}

func TestCullObstacles(t *testing.T) {
	e, _, _ := newTestWorld(t)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	kept := factory.CreatePipes(e, cfg.Pipes.DespawnX+0.1, components.ObstacleData{Speed: 1})
	gone := factory.CreatePipes(e, cfg.Pipes.DespawnX-0.1, components.ObstacleData{Speed: 1})
	keptID, goneID := kept.Entity(), gone.Entity()
	before := len(space.Objects())

	CullObstacles(e)

	if !e.World.Valid(keptID) {
		t.Error("pipe right of the cull line was removed")
	}
	if e.World.Valid(goneID) {
		t.Error("pipe past the cull line survived")
	}
	if got := len(space.Objects()); got != before-2 {
		t.Errorf("space objects %d, want %d", got, before-2)
	}
}

func TestScrollersWrap(t *testing.T) {
	e, _, _ := newTestWorld(t)
	SetTimeScale(e, 1)
	strip := cfg.BackgroundStrip{Y: -5, Height: 1, RepeatDistance: 0.5, MoveSpeed: -1}
	entry := factory.CreateScroller(e, strip, 0)

	for i := 0; i < 1000; i++ {
		tick(e, 1.0/60, UpdateScrollers)
		x := components.Transform.Get(entry).Position.X
		if x < 0 || x >= strip.RepeatDistance {
			t.Fatalf("tick %d: x %v left [0, %v)", i, x, strip.RepeatDistance)
		}
	}
}

func TestScrollerWrapsForwardMotion(t *testing.T) {
	e, _, _ := newTestWorld(t)
	SetTimeScale(e, 1)
	strip := cfg.BackgroundStrip{Y: -5, Height: 1, RepeatDistance: 2, MoveSpeed: 5}
	entry := factory.CreateScroller(e, strip, 0)

	// 10 units travelled is five whole repeats
	tick(e, 2.0, UpdateScrollers)
	if x := components.Transform.Get(entry).Position.X; gomath.Abs(x) > 1e-9 {
		t.Errorf("x = %v after 2s at speed 5, want 0", x)
	}

	tick(e, 0.1, UpdateScrollers)
	if x := components.Transform.Get(entry).Position.X; gomath.Abs(x-0.5) > 1e-9 {
		t.Errorf("x = %v after another 0.1s, want 0.5", x)
	}
}

package systems

import (
	"github.com/automoto/flappy-cat/components"
	"github.com/automoto/flappy-cat/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScrollers moves background strips and wraps them by RepeatDistance.
func UpdateScrollers(e *ecs.ECS) {
	dt := GetOrCreateClock(e).DeltaTime

	components.Scroller.Each(e.World, func(entry *donburi.Entry) {
		scroller := components.Scroller.Get(entry)
		transform := components.Transform.Get(entry)
		transform.Position.X = gamemath.Wrap(transform.Position.X+scroller.MoveSpeed*dt, scroller.OriginX, scroller.RepeatDistance)
	})
}

package factory

import (
	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateScroller creates one background strip. Its position is the strip's
// bottom-left corner.
func CreateScroller(ecs *ecs.ECS, strip cfg.BackgroundStrip, originX float64) *donburi.Entry {
	scroller := archetypes.Scroller.Spawn(ecs)
	components.Transform.SetValue(scroller, components.TransformData{
		Position: math.Vec2{X: originX, Y: strip.Y},
	})
	components.Scroller.SetValue(scroller, components.ScrollerData{
		OriginX:        originX,
		RepeatDistance: strip.RepeatDistance,
		MoveSpeed:      strip.MoveSpeed,
		Height:         strip.Height,
		Color:          strip.Color,
		Depth:          strip.Depth,
	})
	return scroller
}

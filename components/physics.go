package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is a simple rigid body. Velocity is in world units per second.
type BodyData struct {
	Velocity       math.Vec2
	GravityScale   float64
	FreezeRotation bool
	// Kinematic bodies are moved by their own systems and ignore gravity.
	Kinematic bool
}

var Body = donburi.NewComponentType[BodyData]()

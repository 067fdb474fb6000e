package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TransformData struct {
	Position math.Vec2
	Rotation float64 // degrees, counter-clockwise
}

var Transform = donburi.NewComponentType[TransformData]()

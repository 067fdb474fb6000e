package components

import (
	"github.com/automoto/flappy-cat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ColliderShape is one axis-aligned box attached to an entity. Offset is the
// box center relative to the entity's transform, in world units.
type ColliderShape struct {
	Offset math.Vec2
	Size   math.Vec2
	Object *resolv.Object
}

type ColliderData struct {
	Category tags.Category
	Shapes   []ColliderShape
}

var Collider = donburi.NewComponentType[ColliderData]()

// Space is the resolv collision space, stored on its own entity.
var Space = donburi.NewComponentType[resolv.Space]()

// ColliderOwner is stored in resolv.Object.Data so a broadphase hit can be
// traced back to its entity.
type ColliderOwner struct {
	Entity   donburi.Entity
	Category tags.Category
}

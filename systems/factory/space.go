package factory

import (
	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpace creates the collision space. It covers the world rectangle
// ±SpaceHalfWidth x ±SpaceHalfHeight in resolv's pixel coordinates.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w := int(2 * cfg.World.SpaceHalfWidth * cfg.World.PixelsPerUnit)
	h := int(2 * cfg.World.SpaceHalfHeight * cfg.World.PixelsPerUnit)
	spaceData := resolv.NewSpace(w, h, cfg.World.SpaceCellSize, cfg.World.SpaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceRect converts a world box (center, size, Y up) to resolv's top-left
// pixel rectangle (Y down).
func SpaceRect(center, size math.Vec2) (x, y, w, h float64) {
	ppu := cfg.World.PixelsPerUnit
	w = size.X * ppu
	h = size.Y * ppu
	x = (center.X+cfg.World.SpaceHalfWidth)*ppu - w/2
	y = (cfg.World.SpaceHalfHeight-center.Y)*ppu - h/2
	return x, y, w, h
}

// Offset returns pos moved by off.
func Offset(pos, off math.Vec2) math.Vec2 {
	return math.Vec2{X: pos.X + off.X, Y: pos.Y + off.Y}
}

// attachColliders builds one resolv object per shape around the entity's
// transform and adds them to the space.
func attachColliders(ecs *ecs.ECS, entry *donburi.Entry, category tags.Category, shapes ...components.ColliderShape) {
	pos := components.Transform.Get(entry).Position
	owner := &components.ColliderOwner{Entity: entry.Entity(), Category: category}

	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	for i := range shapes {
		x, y, w, h := SpaceRect(Offset(pos, shapes[i].Offset), shapes[i].Size)
		obj := resolv.NewObject(x, y, w, h, category.ResolvTag())
		obj.Data = owner
		shapes[i].Object = obj
		if space != nil {
			space.Add(obj)
		}
	}

	components.Collider.SetValue(entry, components.ColliderData{
		Category: category,
		Shapes:   shapes,
	})
}

// Destroy removes an entity and its colliders.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Collider) {
		collider := components.Collider.Get(entry)
		for _, shape := range collider.Shapes {
			if shape.Object != nil && shape.Object.Space != nil {
				shape.Object.Space.Remove(shape.Object)
			}
		}
	}
	ecs.World.Remove(entry.Entity())
}

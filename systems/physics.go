package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity accelerates every dynamic body. Runs at the fixed rate.
func UpdateGravity(e *ecs.ECS) {
	dt := GetOrCreateClock(e).FixedDeltaTime
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.Kinematic {
			return
		}
		body.Velocity.Y += cfg.Physics.Gravity * body.GravityScale * dt
	})
}

// UpdateBodies integrates body positions and keeps them above the floor.
// Runs at the fixed rate, after velocities were settled for the tick.
func UpdateBodies(e *ecs.ECS) {
	dt := GetOrCreateClock(e).FixedDeltaTime
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.Kinematic {
			return
		}
		transform := components.Transform.Get(entry)
		transform.Position.X += body.Velocity.X * dt
		transform.Position.Y += body.Velocity.Y * dt

		if transform.Position.Y < cfg.World.FloorY {
			transform.Position.Y = cfg.World.FloorY
			if body.Velocity.Y < 0 {
				body.Velocity.Y = 0
			}
		}
	})
}

// SyncColliders moves every resolv object to its entity's transform.
func SyncColliders(e *ecs.ECS) {
	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		collider := components.Collider.Get(entry)
		for _, shape := range collider.Shapes {
			if shape.Object == nil {
				continue
			}
			x, y, _, _ := factory.SpaceRect(factory.Offset(pos, shape.Offset), shape.Size)
			if shape.Object.X == x && shape.Object.Y == y {
				continue
			}
			shape.Object.X, shape.Object.Y = x, y
			shape.Object.Update()
		}
	})
}

// Contacts returns the owners of colliders overlapping entry's shapes. The
// resolv cell check is refined with an exact box overlap.
func Contacts(e *ecs.ECS, entry *donburi.Entry) []components.ColliderOwner {
	if !entry.HasComponent(components.Collider) {
		return nil
	}

	var contacts []components.ColliderOwner
	seen := map[donburi.Entity]bool{entry.Entity(): true}

	for _, shape := range components.Collider.Get(entry).Shapes {
		obj := shape.Object
		if obj == nil || obj.Space == nil {
			continue
		}
		check := obj.Check(0, 0)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			owner, ok := other.Data.(*components.ColliderOwner)
			if !ok || seen[owner.Entity] || !e.World.Valid(owner.Entity) {
				continue
			}
			if !overlaps(obj.X, obj.Y, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
				continue
			}
			seen[owner.Entity] = true
			contacts = append(contacts, *owner)
		}
	}
	return contacts
}

func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

package factory

import (
	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/assets"
	"github.com/automoto/flappy-cat/components"
	"github.com/automoto/flappy-cat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHazard creates a static lethal box such as the ground or the ceiling.
func CreateHazard(ecs *ecs.ECS, hazard assets.Hazard) *donburi.Entry {
	entry := archetypes.Hazard.Spawn(ecs)
	components.Transform.SetValue(entry, components.TransformData{Position: hazard.Center})
	attachColliders(ecs, entry, tags.CategoryHazard, components.ColliderShape{Size: hazard.Size})
	return entry
}

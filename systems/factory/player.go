package factory

import (
	"github.com/automoto/flappy-cat/archetypes"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const playerAnimationKey = "cat"

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Player.SetValue(player, components.PlayerData{})
	components.Body.SetValue(player, components.BodyData{
		GravityScale: cfg.Player.GravityScale,
	})

	attachColliders(ecs, player, tags.CategoryPlayer, components.ColliderShape{
		Size: math.Vec2{X: cfg.Player.CollisionWidth, Y: cfg.Player.CollisionHeight},
	})

	animator, err := GenerateAnimations(playerAnimationKey)
	if err != nil {
		log.Error().Err(err).Msg("player animations")
		animator = &components.AnimatorData{
			Key:      playerAnimationKey,
			Triggers: make(map[string]bool),
			Bools:    make(map[string]bool),
		}
	}
	// A fresh cat starts alive with no pending flap
	animator.ResetTrigger(cfg.ParamFlap)
	animator.SetBool(cfg.ParamIsDead, false)
	components.Animator.Set(player, animator)

	return player
}

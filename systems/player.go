package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/gamemath"
	"github.com/automoto/flappy-cat/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePlayer is the cat's per-frame phase: a new jump press starts the
// game and arms a jump for the next physics tick, and the sprite tilts toward
// the current vertical velocity.
func NewUpdatePlayer(game GameController) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)
		dt := GetOrCreateClock(e).DeltaTime

		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			player := components.Player.Get(entry)
			if player.IsDead {
				return
			}

			if GetAction(input, cfg.ActionJump).JustPressed {
				game.StartGame()
				player.PendingJump = true
			}

			body := components.Body.Get(entry)
			transform := components.Transform.Get(entry)
			target := gamemath.Clamp(body.Velocity.Y, -cfg.Player.MaxTiltDegrees, cfg.Player.MaxTiltDegrees)
			transform.Rotation = gamemath.RotateTowards(transform.Rotation, target, cfg.Player.TiltRateDegrees*dt)
		})
	}
}

// FixedUpdatePlayer is the cat's physics-tick phase: it consumes an armed
// jump and clamps vertical velocity.
func FixedUpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.IsDead {
			return
		}
		body := components.Body.Get(entry)

		if player.PendingJump {
			player.PendingJump = false
			body.Velocity.Y = gamemath.JumpVelocity(body.Velocity.Y, cfg.Player.JumpVelocity)
			components.Animator.Get(entry).SetTrigger(cfg.ParamFlap)
			PlaySFX(e, cfg.SoundJump)
		}

		// The world scrolls instead
		body.Velocity.X = 0
		body.Velocity.Y = gamemath.Clamp(body.Velocity.Y, cfg.Player.MinVelocity, cfg.Player.MaxVelocity)
	})
}

// NewUpdatePlayerContacts kills the cat on its first touch of a lethal
// collider. Runs at the fixed rate after SyncColliders.
func NewUpdatePlayerContacts(game GameController) ecs.System {
	return func(e *ecs.ECS) {
		if cfg.Debug.Invincible {
			return
		}
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			if components.Player.Get(entry).IsDead {
				return
			}
			for _, contact := range Contacts(e, entry) {
				if contact.Category.Lethal() {
					KillPlayer(e, entry, game)
					return
				}
			}
		})
	}
}

// KillPlayer latches the cat's death and notifies the game. It reports false
// when the cat was already dead, in which case nothing happens.
func KillPlayer(e *ecs.ECS, entry *donburi.Entry, game GameController) bool {
	player := components.Player.Get(entry)
	if player.IsDead {
		return false
	}
	player.IsDead = true
	player.PendingJump = false

	components.Body.Get(entry).FreezeRotation = true
	components.Animator.Get(entry).SetBool(cfg.ParamIsDead, true)
	PlaySFX(e, cfg.SoundDeath)

	log.Info().Msg("player died")
	game.TriggerGameOver()
	return true
}

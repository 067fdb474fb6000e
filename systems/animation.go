package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimators resolves animator parameters into a state and advances the
// current animation on scaled time.
func UpdateAnimators(e *ecs.ECS) {
	dt := GetOrCreateClock(e).DeltaTime

	components.Animator.Each(e.World, func(entry *donburi.Entry) {
		animator := components.Animator.Get(entry)

		switch {
		case animator.Bool(cfg.ParamIsDead):
			animator.ResetTrigger(cfg.ParamFlap)
			animator.SetAnimation(cfg.Dead)
		case animator.ConsumeTrigger(cfg.ParamFlap):
			animator.SetAnimation(cfg.Flap)
			// Flapping again mid-flap replays from the first frame
			if animator.Current != nil {
				animator.Current.Restart()
				animator.Current.Looped = false
			}
		case animator.CurrentState == cfg.Flap && (animator.Current == nil || animator.Current.Done()):
			animator.SetAnimation(cfg.Idle)
		case animator.Current == nil:
			animator.SetAnimation(cfg.Idle)
		}

		if animator.Current != nil {
			animator.Current.Update(dt)
		}
	})
}

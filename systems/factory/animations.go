package factory

import (
	"fmt"

	"github.com/automoto/flappy-cat/assets/animations"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
)

// GenerateAnimations creates an AnimatorData for the character key (e.g.
// "cat"), which maps to a set of animation definitions in config.
func GenerateAnimations(key string) (*components.AnimatorData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions for key %q", key)
	}

	animator := &components.AnimatorData{
		Key:        key,
		Triggers:   make(map[string]bool),
		Bools:      make(map[string]bool),
		Animations: make(map[cfg.StateID]*animations.Animation),
	}

	for state, def := range defs {
		// Speed is in ticks at the target rate
		frameDuration := float64(def.Speed) / float64(cfg.Game.TargetTPS)
		anim := animations.NewAnimation(def.First, def.Last, def.Step, frameDuration)
		anim.FreezeOnComplete = def.Hold
		animator.Animations[state] = anim
	}

	animator.SetAnimation(cfg.Idle)
	return animator, nil
}

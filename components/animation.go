package components

import (
	"github.com/automoto/flappy-cat/assets/animations"
	"github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
)

// AnimatorData drives an entity's animation from named parameters. Triggers
// stay set until consumed by the animation system or reset.
type AnimatorData struct {
	Key          string // sheet key, e.g. "cat"
	Triggers     map[string]bool
	Bools        map[string]bool
	CurrentState config.StateID
	Current      *animations.Animation
	Animations   map[config.StateID]*animations.Animation
}

// SetTrigger arms a one-shot parameter.
func (a *AnimatorData) SetTrigger(name string) {
	a.Triggers[name] = true
}

// ResetTrigger disarms a trigger that has not been consumed yet.
func (a *AnimatorData) ResetTrigger(name string) {
	delete(a.Triggers, name)
}

func (a *AnimatorData) SetBool(name string, value bool) {
	a.Bools[name] = value
}

func (a *AnimatorData) Bool(name string) bool {
	return a.Bools[name]
}

// ConsumeTrigger reports whether the trigger was armed and disarms it.
func (a *AnimatorData) ConsumeTrigger(name string) bool {
	if !a.Triggers[name] {
		return false
	}
	delete(a.Triggers, name)
	return true
}

// SetAnimation switches to the animation registered for state, restarting it
// only when the state changes.
func (a *AnimatorData) SetAnimation(state config.StateID) {
	if a.CurrentState == state && a.Current != nil {
		return
	}
	a.CurrentState = state
	anim, ok := a.Animations[state]
	if !ok {
		a.Current = nil
		return
	}
	a.Current = anim
	a.Current.Restart()
	a.Current.Looped = false
}

var Animator = donburi.NewComponentType[AnimatorData]()

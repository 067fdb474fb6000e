package systems

import (
	"github.com/automoto/flappy-cat/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func ensureFade(entry *donburi.Entry) {
	if !entry.HasComponent(components.Fade) {
		entry.AddComponent(components.Fade)
	}
	if !entry.HasComponent(components.Tween) {
		entry.AddComponent(components.Tween)
	}
}

// KillTweens stops every tween running on entry, leaving values where they are.
func KillTweens(entry *donburi.Entry) {
	if !entry.HasComponent(components.Tween) {
		return
	}
	components.Tween.SetValue(entry, components.TweenData{})
}

// TweenAlpha fades entry from its current alpha to `to`.
func TweenAlpha(entry *donburi.Entry, to, duration float64, easing ease.TweenFunc) {
	ensureFade(entry)
	fade := components.Fade.Get(entry)
	tw := components.Tween.Get(entry)
	tw.Alpha = gween.New(float32(fade.Alpha), float32(to), float32(duration), easing)
}

// TweenOffsetYFrom jumps entry's offset to `from` and animates it back to
// where it was.
func TweenOffsetYFrom(entry *donburi.Entry, from, duration float64, easing ease.TweenFunc) {
	ensureFade(entry)
	fade := components.Fade.Get(entry)
	tw := components.Tween.Get(entry)
	target := fade.OffsetY
	fade.OffsetY = from
	tw.OffsetY = gween.New(float32(from), float32(target), float32(duration), easing)
}

// UpdateTweens advances UI tweens on unscaled time so they keep running while
// the simulation is paused.
func UpdateTweens(e *ecs.ECS) {
	dt := float32(GetOrCreateClock(e).UnscaledDeltaTime)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		fade := components.Fade.Get(entry)

		if tw.Alpha != nil {
			v, done := tw.Alpha.Update(dt)
			fade.Alpha = float64(v)
			if done {
				tw.Alpha = nil
			}
		}
		if tw.OffsetY != nil {
			v, done := tw.OffsetY.Update(dt)
			fade.OffsetY = float64(v)
			if done {
				tw.OffsetY = nil
			}
		}
	})
}

package systems

import (
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether any binding of an action is held right now.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// EbitenInput polls keyboard, mouse, gamepads and touches through ebiten.
type EbitenInput struct {
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}

	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}

	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	for _, gpID := range in.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}

	if binding.Touch {
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) > 0 {
			return true
		}
	}
	return false
}

// NewUpdateInput polls src into the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func NewUpdateInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		input := GetOrCreateInput(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
			input.Current[action] = src.Pressed(action)
		}
	}
}

var inputSingleton = NewSingleton(components.Input, func() components.InputData {
	return components.InputData{}
})

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	return inputSingleton.Get(e.World)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionRestart
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, mouse buttons and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Touch                  bool // first touch-begin triggers the action
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionJump: {
				Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
				Touch: true,
			},
			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}

package components

import (
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
)

// ActionState is the derived state of one action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData stores the raw action state of this frame and the previous one.
// Edges are derived from the two buffers.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

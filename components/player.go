package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData is the controllable cat's gameplay state. Velocity lives on the
// physics body.
type PlayerData struct {
	// One-way latch, never cleared within a run
	IsDead bool
	// Set by the frame phase, consumed by the next physics tick
	PendingJump bool
}

var Player = donburi.NewComponentType[PlayerData]()

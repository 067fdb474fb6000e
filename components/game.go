package components

import (
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/yohamta/donburi"
)

// RampData is the slow-to-stop routine: Timer counts down unscaled seconds
// from Duration while the time scale follows Timer/Duration.
type RampData struct {
	Active   bool
	Timer    float64
	Duration float64
}

// GameData is the coordinator's state for one play world.
type GameData struct {
	State cfg.RunState
	Ramp  RampData

	QuitRequested bool
}

var Game = donburi.NewComponentType[GameData]()

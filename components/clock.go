package components

import "github.com/yohamta/donburi"

// ClockData holds the two time sources of a world: scaled simulation time and
// unscaled wall time. Systems read DeltaTime unless they drive the time scale
// themselves.
type ClockData struct {
	TimeScale         float64
	DeltaTime         float64 // scaled, seconds
	UnscaledDeltaTime float64
	Time              float64 // scaled seconds since the world was created
	UnscaledTime      float64
	FixedDeltaTime    float64
	FixedAccumulator  float64
	FixedSteps        int // physics ticks run so far
}

var Clock = donburi.NewComponentType[ClockData]()

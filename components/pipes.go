package components

import "github.com/yohamta/donburi"

// ObstacleData describes a scrolling pipe pair. OriginY is the center of the
// gap.
type ObstacleData struct {
	OriginY   float64
	Oscillate bool
	Amplitude float64
	Period    float64
	Speed     float64
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

type SpawnerData struct {
	Interval float64
	Timer    float64
	Spawned  int
}

var Spawner = donburi.NewComponentType[SpawnerData]()

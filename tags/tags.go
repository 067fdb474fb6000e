package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Pipes      = donburi.NewTag().SetName("Pipes")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Background = donburi.NewTag().SetName("Background")
	Spawner    = donburi.NewTag().SetName("Spawner")
)

// Category classifies a collider. Contact handlers switch on the category
// instead of comparing names.
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryObstacle
	CategoryHazard
	CategoryScenery
)

// Resolv tags for physics collision, one per category.
const (
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
	ResolvHazard   = "hazard"
	ResolvScenery  = "scenery"
)

// ResolvTag returns the resolv tag registered for the category.
func (c Category) ResolvTag() string {
	switch c {
	case CategoryPlayer:
		return ResolvPlayer
	case CategoryObstacle:
		return ResolvObstacle
	case CategoryHazard:
		return ResolvHazard
	case CategoryScenery:
		return ResolvScenery
	}
	return ""
}

// Lethal reports whether touching a collider of this category kills the player.
func (c Category) Lethal() bool {
	return c == CategoryObstacle || c == CategoryHazard
}

func (c Category) String() string {
	if t := c.ResolvTag(); t != "" {
		return t
	}
	return "none"
}

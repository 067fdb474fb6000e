package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ScrollerData fakes an endless background by wrapping a strip back by
// RepeatDistance once it has moved that far from OriginX.
type ScrollerData struct {
	OriginX        float64
	RepeatDistance float64
	MoveSpeed      float64

	// Drawing
	Height float64
	Color  color.RGBA
	Depth  int
}

var Scroller = donburi.NewComponentType[ScrollerData]()

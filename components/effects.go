package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is a UI element's presentation state, animated by tweens on
// unscaled time.
type FadeData struct {
	Visible bool
	Alpha   float64 // 0..1
	OffsetY float64 // screen pixels from the rest position
}

var Fade = donburi.NewComponentType[FadeData]()

// TweenData holds the running tweens of a FadeData entity. A nil tween is
// idle.
type TweenData struct {
	Alpha   *gween.Tween
	OffsetY *gween.Tween
}

var Tween = donburi.NewComponentType[TweenData]()

// StartPromptData marks the "tap to start" element.
type StartPromptData struct {
	Text string
}

var StartPrompt = donburi.NewComponentType[StartPromptData]()

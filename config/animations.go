package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
	// Freeze on the last frame instead of looping
	Hold bool
}

// CharacterAnimations maps a character key to its animation definitions.
// Frames index into the sheet generated for that character.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"cat": {
		Idle: {First: 0, Last: 1, Step: 1, Speed: 12},
		Flap: {First: 2, Last: 4, Step: 1, Speed: 4, Hold: true},
		Dead: {First: 5, Last: 5, Step: 1, Speed: 0, Hold: true},
	},
}

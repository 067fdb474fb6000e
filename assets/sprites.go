package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/flappy-cat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// catPose is the per-frame variation of the cat drawing.
type catPose struct {
	pawDY  float32 // paw offset from the body center, pixels
	tailDY float32
	dead   bool
}

// Frame order matches config.CharacterAnimations["cat"].
var catPoses = []catPose{
	{pawDY: 4, tailDY: -4},
	{pawDY: 5, tailDY: -2},
	{pawDY: -8, tailDY: -6},
	{pawDY: 0, tailDY: -2},
	{pawDY: 8, tailDY: 2},
	{pawDY: 6, tailDY: 4, dead: true},
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

var animationLoader = NewAnimationLoader()

// Sheet returns the sprite sheet for key, drawing it on first use. Frames are
// laid out left to right.
func (l *AnimationLoader) Sheet(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}

	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	sheet := ebiten.NewImage(w*len(catPoses), h)
	for i, pose := range catPoses {
		frame := sheet.SubImage(image.Rect(i*w, 0, (i+1)*w, h)).(*ebiten.Image)
		drawCat(frame, float32(i*w), float32(w), float32(h), config.Player.BodyColor, pose)
	}

	l.cache[key] = sheet
	return sheet
}

// Frame returns a cached sub-image of the sheet.
func (l *AnimationLoader) Frame(key string, index int) *ebiten.Image {
	if index < 0 || index >= len(catPoses) {
		index = 0
	}
	cacheKey := fmt.Sprintf("%s/%d", key, index)
	if img, ok := l.frameCache[cacheKey]; ok {
		return img
	}

	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	frame := l.Sheet(key).SubImage(image.Rect(index*w, 0, (index+1)*w, h)).(*ebiten.Image)
	l.frameCache[cacheKey] = frame
	return frame
}

func GetSheet(key string) *ebiten.Image {
	return animationLoader.Sheet(key)
}

func GetFrame(key string, index int) *ebiten.Image {
	return animationLoader.Frame(key, index)
}

// PreloadAllAnimations draws every sheet up front so the first rendered frame
// does not stall.
func PreloadAllAnimations() {
	for key := range config.CharacterAnimations {
		for i := range catPoses {
			_ = GetFrame(key, i)
		}
	}
}

// drawCat draws one frame facing right. ox is the frame's x offset inside the
// sheet, since sub-images keep the parent's coordinates.
func drawCat(dst *ebiten.Image, ox, w, h float32, body color.RGBA, pose catPose) {
	cx, cy := ox+w*0.45, h*0.55
	dark := shade(body, 0.7)

	// Tail
	vector.StrokeLine(dst, cx-12, cy, cx-20, cy+pose.tailDY, 4, dark, true)

	// Body and head
	vector.DrawFilledCircle(dst, cx, cy, 12, body, true)
	vector.DrawFilledCircle(dst, cx+12, cy-6, 9, body, true)

	// Ears
	vector.StrokeLine(dst, cx+7, cy-12, cx+8, cy-19, 4, dark, true)
	vector.StrokeLine(dst, cx+17, cy-12, cx+18, cy-19, 4, dark, true)

	// Paw doubles as the wing
	vector.DrawFilledCircle(dst, cx-2, cy+pose.pawDY, 5, dark, true)

	if pose.dead {
		vector.StrokeLine(dst, cx+13, cy-10, cx+17, cy-6, 1.5, config.Black, true)
		vector.StrokeLine(dst, cx+17, cy-10, cx+13, cy-6, 1.5, config.Black, true)
		return
	}
	vector.DrawFilledCircle(dst, cx+15, cy-8, 2, config.Black, true)
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

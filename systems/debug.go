package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the space and prints the clock.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	// resolv's origin is the top-left corner of the space rectangle
	ppu := cfg.World.PixelsPerUnit
	offX := float64(cfg.C.Width)/2 - cfg.World.SpaceHalfWidth*ppu
	offY := float64(cfg.C.Height)/2 - cfg.World.SpaceHalfHeight*ppu

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X + offX
			y := obj.Y + offY

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvObstacle) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvHazard) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	clock := GetOrCreateClock(ecs)
	game := GetOrCreateGame(ecs)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"state %s\nscale %.2f\nticks %d\nfps %.0f",
		game.State, clock.TimeScale, clock.FixedSteps, ebiten.ActualFPS(),
	))
}

package systems

import (
	"image/color"
	gomath "math"
	"sort"

	"github.com/automoto/flappy-cat/assets"
	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/fonts"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/automoto/flappy-cat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// WorldToScreen maps a world point (units, Y up, origin at the screen center)
// to screen pixels.
func WorldToScreen(p math.Vec2) (float64, float64) {
	ppu := cfg.World.PixelsPerUnit
	return p.X*ppu + float64(cfg.C.Width)/2, float64(cfg.C.Height)/2 - p.Y*ppu
}

// fillWorldRect fills the world-space box [minX, maxX] x [minY, maxY].
func fillWorldRect(screen *ebiten.Image, minX, minY, maxX, maxY float64, clr color.Color) {
	x, y := WorldToScreen(math.Vec2{X: minX, Y: maxY})
	ppu := cfg.World.PixelsPerUnit
	vector.FillRect(screen, float32(x), float32(y), float32((maxX-minX)*ppu), float32((maxY-minY)*ppu), clr, false)
}

func DrawSky(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)
}

// DrawBackgrounds draws the scrolling scenery strips back to front. Each strip
// alternates two shades every half RepeatDistance, so the wrap is seamless.
func DrawBackgrounds(e *ecs.ECS, screen *ebiten.Image) {
	type strip struct {
		pos  math.Vec2
		data *components.ScrollerData
	}
	var strips []strip
	components.Scroller.Each(e.World, func(entry *donburi.Entry) {
		strips = append(strips, strip{
			pos:  components.Transform.Get(entry).Position,
			data: components.Scroller.Get(entry),
		})
	})
	sort.SliceStable(strips, func(i, j int) bool {
		return strips[i].data.Depth < strips[j].data.Depth
	})

	halfW := float64(cfg.C.Width) / 2 / cfg.World.PixelsPerUnit
	for _, s := range strips {
		repeat := s.data.RepeatDistance
		if repeat <= 0 {
			fillWorldRect(screen, -halfW, s.pos.Y, halfW, s.pos.Y+s.data.Height, s.data.Color)
			continue
		}

		light := tint(s.data.Color, 1.08)
		x := s.pos.X
		for x > -halfW {
			x -= repeat
		}
		for ; x < halfW; x += repeat {
			fillWorldRect(screen, x, s.pos.Y, x+repeat/2, s.pos.Y+s.data.Height, s.data.Color)
			fillWorldRect(screen, x+repeat/2, s.pos.Y, x+repeat, s.pos.Y+s.data.Height*0.85, light)
		}
	}
}

// DrawPipes draws each pipe of a pair with a darker cap on its gap end.
func DrawPipes(e *ecs.ECS, screen *ebiten.Image) {
	pc := cfg.Pipes
	tags.Pipes.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		for _, shape := range components.Collider.Get(entry).Shapes {
			c := factory.Offset(pos, shape.Offset)
			minX, maxX := c.X-shape.Size.X/2, c.X+shape.Size.X/2
			minY, maxY := c.Y-shape.Size.Y/2, c.Y+shape.Size.Y/2
			fillWorldRect(screen, minX, minY, maxX, maxY, pc.Color)

			capInset := pc.Width * 0.1
			if shape.Offset.Y < 0 {
				fillWorldRect(screen, minX-capInset, maxY-pc.CapHeight, maxX+capInset, maxY, pc.CapColor)
			} else {
				fillWorldRect(screen, minX-capInset, minY, maxX+capInset, minY+pc.CapHeight, pc.CapColor)
			}
		}
	})
}

// DrawHazards draws the ground and ceiling boxes.
func DrawHazards(e *ecs.ECS, screen *ebiten.Image) {
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Transform.Get(entry).Position
		for _, shape := range components.Collider.Get(entry).Shapes {
			c := factory.Offset(pos, shape.Offset)
			minX, maxX := c.X-shape.Size.X/2, c.X+shape.Size.X/2
			minY, maxY := c.Y-shape.Size.Y/2, c.Y+shape.Size.Y/2
			fillWorldRect(screen, minX, minY, maxX, maxY, cfg.Sand)
			if c.Y < 0 {
				// Grass edge on the ground
				fillWorldRect(screen, minX, maxY-0.12, maxX, maxY, cfg.Grass)
			}
		}
	})
}

// DrawPlayer draws the cat's current frame, tilted by its rotation. A dead
// cat is drawn desaturated.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		animator := components.Animator.Get(entry)
		transform := components.Transform.Get(entry)

		frame := 0
		if animator.Current != nil {
			frame = animator.Current.Frame()
		}
		img := assets.GetFrame(animator.Key, frame)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		sx, sy := WorldToScreen(transform.Position)
		// Counter-clockwise in world space is clockwise on a Y-down screen
		angle := -transform.Rotation * gomath.Pi / 180

		dead := components.Player.Get(entry).IsDead
		if dead && assets.DesaturateShader != nil {
			shaderOp.GeoM.Reset()
			shaderOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
			shaderOp.GeoM.Rotate(angle)
			shaderOp.GeoM.Translate(sx, sy)
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{"Amount": float32(1)}
			screen.DrawRectShader(w, h, assets.DesaturateShader, shaderOp)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Rotate(angle)
		drawOp.GeoM.Translate(sx, sy)
		if dead {
			drawOp.ColorScale.Scale(0.6, 0.6, 0.6, 1)
		}
		screen.DrawImage(img, drawOp)
	})
}

// DrawStartPrompt draws the "tap to start" text while it fades.
func DrawStartPrompt(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.StartPrompt.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if !fade.Visible || fade.Alpha <= 0 {
		return
	}

	face := fonts.Bold.Get()
	msg := components.StartPrompt.Get(entry).Text
	bounds := text.BoundString(face, msg)
	x := (cfg.C.Width - bounds.Dx()) / 2
	y := int(float64(cfg.C.Height)/2 + cfg.Game.StartPromptY + fade.OffsetY)

	shadow := withAlpha(cfg.Black, fade.Alpha*0.5)
	text.Draw(screen, msg, face, x+2, y+2, shadow)
	text.Draw(screen, msg, face, x, y, withAlpha(cfg.White, fade.Alpha))
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	alpha = gomath.Max(0, gomath.Min(1, alpha))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}

func tint(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(gomath.Min(255, float64(v)*k))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

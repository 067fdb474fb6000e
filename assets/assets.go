package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/flappy-cat/config"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var assetFS embed.FS

// Object names looked up in the field map.
const (
	objectPlayer  = "Player"
	objectSpawner = "PipeSpawner"
	groupHazards  = "Hazards"
	groupBackdrop = "Background"
)

// Hazard is a lethal box of the play field (ground, ceiling) in world units.
type Hazard struct {
	Name   string
	Center math.Vec2
	Size   math.Vec2
}

// Layout is the play-field placement in world units (Y up, origin at the
// screen center).
type Layout struct {
	Name        string
	Width       float64
	Height      float64
	Player      math.Vec2
	Spawner     math.Vec2
	Hazards     []Hazard
	Backgrounds []config.BackgroundStrip
}

type LevelLoader struct {
	fsys fs.FS
	ppu  float64
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, ppu: config.World.PixelsPerUnit}
}

// NewLevelLoaderFS reads maps from fsys instead of the embedded levels.
func NewLevelLoaderFS(fsys fs.FS, pixelsPerUnit float64) *LevelLoader {
	return &LevelLoader{fsys: fsys, ppu: pixelsPerUnit}
}

// PixelToWorld converts a Tiled pixel position (Y down, origin top-left) to
// world units on a map of mapW x mapH pixels.
func PixelToWorld(px, py, mapW, mapH, ppu float64) math.Vec2 {
	return math.Vec2{
		X: (px - mapW/2) / ppu,
		Y: (mapH/2 - py) / ppu,
	}
}

// LoadLayout parses a Tiled map into a Layout.
func (l *LevelLoader) LoadLayout(path string) (Layout, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load map %s: %w", path, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)

	layout := Layout{
		Name:   path,
		Width:  mapW / l.ppu,
		Height: mapH / l.ppu,
	}

	var havePlayer, haveSpawner bool
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch {
			case o.Name == objectPlayer:
				layout.Player = PixelToWorld(o.X, o.Y, mapW, mapH, l.ppu)
				havePlayer = true
			case o.Name == objectSpawner:
				layout.Spawner = PixelToWorld(o.X, o.Y, mapW, mapH, l.ppu)
				haveSpawner = true
			case og.Name == groupHazards:
				layout.Hazards = append(layout.Hazards, Hazard{
					Name:   o.Name,
					Center: PixelToWorld(o.X+o.Width/2, o.Y+o.Height/2, mapW, mapH, l.ppu),
					Size:   math.Vec2{X: o.Width / l.ppu, Y: o.Height / l.ppu},
				})
			case og.Name == groupBackdrop:
				clr, err := parseTiledColor(o.Properties.GetString("color"))
				if err != nil {
					return Layout{}, fmt.Errorf("background %q: %w", o.Name, err)
				}
				bottom := PixelToWorld(o.X, o.Y+o.Height, mapW, mapH, l.ppu)
				layout.Backgrounds = append(layout.Backgrounds, config.BackgroundStrip{
					Y:              bottom.Y,
					Height:         o.Height / l.ppu,
					RepeatDistance: o.Properties.GetFloat("repeatDistance"),
					MoveSpeed:      o.Properties.GetFloat("moveSpeed"),
					Color:          clr,
					Depth:          o.Properties.GetInt("depth"),
				})
			}
		}
	}

	if !havePlayer {
		return Layout{}, fmt.Errorf("map %s: no %s object", path, objectPlayer)
	}
	if !haveSpawner {
		return Layout{}, fmt.Errorf("map %s: no %s object", path, objectSpawner)
	}

	sort.SliceStable(layout.Backgrounds, func(i, j int) bool {
		return layout.Backgrounds[i].Depth < layout.Backgrounds[j].Depth
	})

	return layout, nil
}

// DefaultLayout builds the layout from config.Layout.
func DefaultLayout() Layout {
	lc := config.Layout
	width := float64(config.C.Width) / config.World.PixelsPerUnit
	height := float64(config.C.Height) / config.World.PixelsPerUnit
	hazardWidth := width * 2

	return Layout{
		Name:    "default",
		Width:   width,
		Height:  height,
		Player:  math.Vec2{X: lc.PlayerX, Y: lc.PlayerY},
		Spawner: math.Vec2{X: lc.SpawnerX, Y: lc.SpawnerY},
		Hazards: []Hazard{
			{
				Name:   "Ground",
				Center: math.Vec2{X: 0, Y: lc.GroundY - lc.GroundH/2},
				Size:   math.Vec2{X: hazardWidth, Y: lc.GroundH},
			},
			{
				Name:   "Ceiling",
				Center: math.Vec2{X: 0, Y: lc.CeilingY + lc.CeilingH/2},
				Size:   math.Vec2{X: hazardWidth, Y: lc.CeilingH},
			},
		},
		Backgrounds: append([]config.BackgroundStrip(nil), lc.Backgrounds...),
	}
}

// parseTiledColor reads Tiled's "#AARRGGBB" (or "#RRGGBB") color values.
func parseTiledColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex = "ff" + hex
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

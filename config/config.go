package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every renderer.
const Default ecs.LayerID = 0

// WorldConfig describes the play field in world units (Y up, origin at the
// screen center) and how it maps to screen pixels.
type WorldConfig struct {
	PixelsPerUnit float64

	// Collision space bounds (world units), larger than the visible screen so
	// pipes register before they scroll in.
	SpaceHalfWidth  float64
	SpaceHalfHeight float64
	SpaceCellSize   int

	// Bodies never fall below this line
	FloorY float64
}

// ClockConfig contains timing configuration
type ClockConfig struct {
	FixedDeltaTime        float64 // seconds of scaled time per physics tick
	MaxFixedStepsPerFrame int     // cap to avoid a spiral after a long frame
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Physics
	MinVelocity  float64
	MaxVelocity  float64
	JumpVelocity float64
	GravityScale float64

	// Visual tilt
	MaxTiltDegrees  float64
	TiltRateDegrees float64 // degrees per second

	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
	BodyColor       color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 // world units per second squared, negative is down
}

// PipesConfig contains pipe obstacle configuration values
type PipesConfig struct {
	MovementSpeed     float64
	YVariability      float64
	ChanceOfYMovement float64
	YMovementDiff     float64 // oscillation amplitude
	Period            float64 // oscillation period in seconds

	Gap    float64 // vertical opening between the two pipes
	Width  float64
	Length float64

	SpawnInterval float64
	DespawnX      float64

	Color     color.RGBA
	CapColor  color.RGBA
	CapHeight float64
}

// GameConfig contains run-loop configuration values
type GameConfig struct {
	StopTimeOnGameOver float64 // seconds of unscaled time for the slow-to-stop ramp
	StartFadeDuration  float64
	StartPromptText    string
	StartPromptY       float64 // screen pixels
	TargetTPS          int
}

// GameOverConfig contains game over panel configuration values
type GameOverConfig struct {
	FadeDuration    float64
	SlideFromOffset float64 // screen pixels, panel starts this far below its rest position
	SlideDuration   float64
	Title           string
	TitleColor      color.RGBA
	PanelColor      color.RGBA
	OverlayColor    color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	ButtonText      color.RGBA
	PanelWidth      int
	PanelHeight     int
}

// LayoutConfig holds the fallback play-field placement used when the Tiled
// map cannot be loaded.
type LayoutConfig struct {
	MapPath     string
	PlayerX     float64
	PlayerY     float64
	SpawnerX    float64
	SpawnerY    float64
	GroundY     float64 // top edge of the ground hazard
	GroundH     float64
	CeilingY    float64 // bottom edge of the ceiling hazard
	CeilingH    float64
	Backgrounds []BackgroundStrip
}

// BackgroundStrip is one layer of fake side-scrolling scenery.
type BackgroundStrip struct {
	Y              float64 // bottom edge, world units
	Height         float64
	RepeatDistance float64
	MoveSpeed      float64
	Color          color.RGBA
	Depth          int // lower draws first
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	Seed   int64 // 0 picks a time-based seed
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	Invincible    bool
}

// Global configuration instances
var C *Config
var World WorldConfig
var Clock ClockConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Pipes PipesConfig
var Game GameConfig
var GameOver GameOverConfig
var Layout LayoutConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky          = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	PipeGreen    = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	PipeDark     = color.RGBA{R: 84, G: 128, B: 34, A: 255}
	Sand         = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	Grass        = color.RGBA{R: 94, G: 168, B: 56, A: 255}
	Cloud        = color.RGBA{R: 233, G: 252, B: 217, A: 255}
	City         = color.RGBA{R: 160, G: 214, B: 197, A: 255}
	CatOrange    = color.RGBA{R: 244, G: 164, B: 66, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	PanelBrown   = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	ButtonOrange = color.RGBA{R: 230, G: 97, B: 29, A: 255}
	ButtonLight  = color.RGBA{R: 250, G: 140, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  360,
		Height: 640,
		Title:  "Flappy Cat",
	}

	World = WorldConfig{
		PixelsPerUnit:   64,
		SpaceHalfWidth:  8,
		SpaceHalfHeight: 6,
		SpaceCellSize:   16,
		FloorY:          -4.2,
	}

	Clock = ClockConfig{
		FixedDeltaTime:        0.02,
		MaxFixedStepsPerFrame: 5,
	}

	Physics = PhysicsConfig{
		Gravity: -9.81,
	}

	Player = PlayerConfig{
		MinVelocity:     -10,
		MaxVelocity:     20,
		JumpVelocity:    20,
		GravityScale:    10,
		MaxTiltDegrees:  30,
		TiltRateDegrees: 360,
		FrameWidth:      48,
		FrameHeight:     40,
		CollisionWidth:  0.6,
		CollisionHeight: 0.5,
		BodyColor:       CatOrange,
	}

	Pipes = PipesConfig{
		MovementSpeed:     1,
		YVariability:      2,
		ChanceOfYMovement: 0.1,
		YMovementDiff:     1,
		Period:            3,
		Gap:               2.8,
		Width:             1.1,
		Length:            10,
		SpawnInterval:     3,
		DespawnX:          -5,
		Color:             PipeGreen,
		CapColor:          PipeDark,
		CapHeight:         0.35,
	}

	Game = GameConfig{
		StopTimeOnGameOver: 1,
		StartFadeDuration:  0.5,
		StartPromptText:    "TAP TO START",
		StartPromptY:       200,
		TargetTPS:          60,
	}

	GameOver = GameOverConfig{
		FadeDuration:    0.5,
		SlideFromOffset: 300,
		SlideDuration:   0.5,
		Title:           "GAME OVER",
		TitleColor:      ButtonOrange,
		PanelColor:      PanelBrown,
		OverlayColor:    BlackOverlay,
		ButtonColor:     ButtonOrange,
		ButtonHover:     ButtonLight,
		ButtonText:      White,
		PanelWidth:      260,
		PanelHeight:     200,
	}

	Layout = LayoutConfig{
		MapPath:  "levels/field.tmx",
		PlayerX:  -1.2,
		PlayerY:  0,
		SpawnerX: 4,
		SpawnerY: 0,
		GroundY:  -4.2,
		GroundH:  0.8,
		CeilingY: 5.2,
		CeilingH: 1,
		Backgrounds: []BackgroundStrip{
			{Y: -2.6, Height: 1.6, RepeatDistance: 3, MoveSpeed: -0.25, Color: Cloud, Depth: 0},
			{Y: -4.2, Height: 1.6, RepeatDistance: 2, MoveSpeed: -0.5, Color: City, Depth: 1},
			{Y: -5, Height: 0.8, RepeatDistance: 0.5, MoveSpeed: -1, Color: Grass, Depth: 2},
		},
	}

	Debug = DebugConfig{}
}

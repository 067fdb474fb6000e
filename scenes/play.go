package scenes

import (
	"sync"

	"github.com/automoto/flappy-cat/assets"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems"
	"github.com/automoto/flappy-cat/systems/factory"
	"github.com/automoto/flappy-cat/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlayScene is one run of the game: a fresh world from the start prompt to
// the game over panel. Restarting builds a new PlayScene.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	coordinator  *systems.Coordinator
	gameOverUI   *ui.GameOverUI
	input        systems.InputSource
	once         sync.Once

	reloadRequested bool
}

// NewPlayScene creates a play scene reading the real devices.
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc, input: systems.NewEbitenInput()}
}

// NewPlaySceneWithInput creates a play scene fed by src.
func NewPlaySceneWithInput(sc SceneChanger, src systems.InputSource) *PlayScene {
	return &PlayScene{sceneChanger: sc, input: src}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// Swap worlds only after the frame's audio was drained
	if ps.reloadRequested {
		systems.ResetControllers()
		ps.sceneChanger.ChangeScene(NewPlaySceneWithInput(ps.sceneChanger, ps.input))
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Sky)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// ReloadScene asks for a fresh world at the end of the current frame.
func (ps *PlayScene) ReloadScene() {
	ps.reloadRequested = true
}

// QuitRequested reports whether the player asked to close the game.
func (ps *PlayScene) QuitRequested() bool {
	return ps.coordinator != nil && ps.coordinator.QuitRequested()
}

func (ps *PlayScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	if err := assets.LoadShaders(); err != nil {
		log.Warn().Err(err).Msg("shaders unavailable, dead cat drawn dimmed instead")
	}

	e := ecs.NewECS(donburi.NewWorld())
	ps.ecs = e
	ps.coordinator = systems.NewCoordinator(e, ps)

	layout, err := assets.NewLevelLoader().LoadLayout(cfg.Layout.MapPath)
	if err != nil {
		log.Warn().Err(err).Str("map", cfg.Layout.MapPath).Msg("using built-in layout")
		layout = assets.DefaultLayout()
	}
	populate(e, layout)

	gameOverUI, err := ui.NewGameOverUI(e, ps.coordinator)
	if err != nil {
		log.Error().Err(err).Msg("game over panel unavailable")
	}
	ps.gameOverUI = gameOverUI

	addSystems(e, ps.coordinator, ps.input, ps.gameOverUI)

	log.Info().
		Str("layout", layout.Name).
		Int("backgrounds", len(layout.Backgrounds)).
		Msg("play scene ready")

	// Music plays from the start prompt on
	systems.PlayMusic(e)
}

// populate creates every entity of a fresh run.
func populate(e *ecs.ECS, layout assets.Layout) {
	factory.CreateSpace(e)
	systems.CreateControllers(e, cfg.C.Seed)

	for _, strip := range layout.Backgrounds {
		factory.CreateScroller(e, strip, 0)
	}
	for _, hazard := range layout.Hazards {
		factory.CreateHazard(e, hazard)
	}

	factory.CreatePlayer(e, layout.Player)
	factory.CreateSpawner(e, layout.Spawner)
}

// addSystems registers the frame in order. Spawners run after obstacles so a
// new pair is not moved twice in its first frame.
func addSystems(e *ecs.ECS, coordinator *systems.Coordinator, input systems.InputSource, gameOverUI *ui.GameOverUI) {
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.NewUpdateInput(input))
	e.AddSystem(systems.NewUpdatePlayer(coordinator))
	e.AddSystem(systems.UpdateObstacles)
	e.AddSystem(systems.UpdateSpawners)
	e.AddSystem(systems.UpdateScrollers)
	e.AddSystem(systems.CullObstacles)
	e.AddSystem(systems.NewFixedUpdate(
		systems.UpdateGravity,
		systems.FixedUpdatePlayer,
		systems.UpdateBodies,
		systems.SyncColliders,
		systems.NewUpdatePlayerContacts(coordinator),
	))
	e.AddSystem(systems.UpdateGame)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateAnimators)
	e.AddSystem(systems.NewUpdateGameOver(coordinator))
	if gameOverUI != nil {
		e.AddSystem(gameOverUI.Update)
	}
	// Audio runs last so requests from this frame play this frame
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawSky)
	e.AddRenderer(cfg.Default, systems.DrawBackgrounds)
	e.AddRenderer(cfg.Default, systems.DrawPipes)
	e.AddRenderer(cfg.Default, systems.DrawHazards)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawStartPrompt)
	if gameOverUI != nil {
		e.AddRenderer(cfg.Default, gameOverUI.Draw)
	}
	e.AddRenderer(cfg.Default, systems.DrawDebug)
}

package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/flappy-cat/components"
	cfg "github.com/automoto/flappy-cat/config"
	"github.com/automoto/flappy-cat/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the ebitenui panel shown once time has stopped. It is drawn
// through an offscreen canvas so the panel's fade and slide apply to every
// widget at once.
type GameOverUI struct {
	UI *ebitenui.UI

	ecs  *ecs.ECS
	game *systems.Coordinator

	titleFace  text.Face
	buttonFace text.Face

	canvas *ebiten.Image
	drawOp ebiten.DrawImageOptions
}

// NewGameOverUI builds the panel. Its buttons run the same options as the
// keyboard shortcuts.
func NewGameOverUI(e *ecs.ECS, game *systems.Coordinator) (*GameOverUI, error) {
	gui := &GameOverUI{ecs: e, game: game}

	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI()

	return gui, nil
}

func (gui *GameOverUI) loadFonts() error {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load button font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load title font: %w", err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: bold,
		Size:   32,
	}
	gui.buttonFace = &text.GoTextFace{
		Source: regular,
		Size:   18,
	}
	return nil
}

func (gui *GameOverUI) buildUI() {
	gc := cfg.GameOver

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(gc.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(14),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(gc.PanelWidth, gc.PanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(gc.Title, &gui.titleFace, &widget.LabelColor{
			Idle: gc.TitleColor,
		}),
	)
	panel.AddChild(title)

	panel.AddChild(gui.button("RESTART", components.GameOverRestart))
	panel.AddChild(gui.button("QUIT", components.GameOverQuit))

	rootContainer.AddChild(panel)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) button(label string, option components.GameOverOption) *widget.Button {
	gc := cfg.GameOver
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(gc.PanelWidth-40, 40),
		),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text(label, &gui.buttonFace, &widget.ButtonTextColor{
			Idle:    gc.ButtonText,
			Hover:   gc.ButtonText,
			Pressed: color.RGBA{230, 230, 230, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if !systems.GetOrCreateGameOver(gui.ecs).Shown {
				return
			}
			systems.SelectGameOverOption(gui.ecs, gui.game, option)
		}),
	)
}

func (gui *GameOverUI) buttonImage() *widget.ButtonImage {
	gc := cfg.GameOver
	idle := image.NewNineSliceColor(gc.ButtonColor)
	hover := image.NewNineSliceColor(gc.ButtonHover)
	pressed := image.NewNineSliceColor(gc.TitleColor)
	disabled := image.NewNineSliceColor(color.RGBA{120, 120, 120, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update feeds input to the panel while it is shown. It runs as a system so
// a click lands before the frame's audio drain.
func (gui *GameOverUI) Update(e *ecs.ECS) {
	if !systems.GetOrCreateGameOver(e).Shown {
		return
	}
	gui.UI.Update()
}

// Draw renders the dimmed overlay and the panel at its current fade.
func (gui *GameOverUI) Draw(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok || !entry.HasComponent(components.Fade) {
		return
	}
	fade := components.Fade.Get(entry)
	if !fade.Visible || fade.Alpha <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(float64(overlay.A) * fade.Alpha)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{R: overlay.R, G: overlay.G, B: overlay.B, A: overlay.A}, false)

	if gui.canvas == nil || gui.canvas.Bounds().Dx() != w || gui.canvas.Bounds().Dy() != h {
		gui.canvas = ebiten.NewImage(w, h)
	}
	gui.canvas.Clear()
	gui.UI.Draw(gui.canvas)

	gui.drawOp.GeoM.Reset()
	gui.drawOp.ColorScale.Reset()
	gui.drawOp.GeoM.Translate(0, fade.OffsetY)
	gui.drawOp.ColorScale.ScaleAlpha(float32(fade.Alpha))
	screen.DrawImage(gui.canvas, &gui.drawOp)
}

package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/skyraid/game"
)

var background = color.RGBA{10, 12, 28, 255}

// Overlay is drawn on top of the game, for example a debug UI.
// BeginFrame and EndFrame bracket each simulation step.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game implements ebiten.Game around a Simulation.
type Game struct {
	Sim      *game.Simulation
	Viewport *LayoutViewport
	Clock    game.Clock
	Overlay  Overlay
	// ShowHUD prints frame rate and entity counts in the corner.
	ShowHUD bool

	painter *painter
	started bool
}

func NewGame(sim *game.Simulation, viewport *LayoutViewport) *Game {
	return &Game{
		Sim:      sim,
		Viewport: viewport,
		Clock:    game.NewWallClock(),
		ShowHUD:  true,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	err := g.Sim.Step(g.frameDelta())

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}

	return err
}

// frameDelta reads the clock. The first frame reports zero so that window and
// backend setup time does not move anything.
func (g *Game) frameDelta() float64 {
	dt := g.Clock.Delta()
	if !g.started {
		g.started = true
		return 0
	}
	return dt
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.painter == nil {
		g.painter = newPainter()
	}

	screen.Fill(background)

	snap := g.Sim.Snapshot()
	height := float32(snap.Height)

	for _, enemy := range snap.Enemies {
		g.painter.enemy(screen, float32(enemy.Position.X), height-float32(enemy.Position.Y), enemy.Variant)
	}

	player := snap.PlayerPosition
	g.painter.player(screen, float32(player.X), height-float32(player.Y), float32(g.Sim.Config().PlayerSize), snap.PlayerFrame)

	if g.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  enemies: %d  reaped: %d",
			ebiten.ActualFPS(), len(snap.Enemies), g.Sim.Reaped()))
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Viewport.resize(outsideWidth, outsideHeight)
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

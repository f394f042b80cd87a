// Package debugui provides a Dear ImGui overlay for inspecting a running simulation.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/game"
)

// Overlay renders the debug windows on top of the game. It satisfies
// display.Overlay.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	sim     *game.Simulation

	browser   *EntityBrowser
	inspector *EntityInspector
	stats     *PerformanceStats
}

// NewOverlay creates the ImGui backend and its window. It must be called
// before ebiten.RunGame.
func NewOverlay(sim *game.Simulation, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		sim:       sim,
		browser:   NewEntityBrowser(100),
		inspector: &EntityInspector{},
		stats:     NewPerformanceStats(120),
	}
}

// WantCaptureKeyboard reports whether ImGui is consuming keyboard input.
func (o *Overlay) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame builds every window from the state left by the frame's step.
func (o *Overlay) EndFrame() {
	snap := o.sim.Snapshot()

	selected := o.browser.Render(snap)
	o.inspector.Render(o.sim.World(), selected)
	o.stats.Render(o.sim.Stats())

	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

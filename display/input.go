// Package display runs a simulation in an Ebiten window.
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/game"
)

var keyBindings = map[game.Key]ebiten.Key{
	game.KeyLeft:  ebiten.KeyArrowLeft,
	game.KeyRight: ebiten.KeyArrowRight,
	game.KeyUp:    ebiten.KeyArrowUp,
	game.KeyDown:  ebiten.KeyArrowDown,
	game.KeyA:     ebiten.KeyA,
	game.KeyW:     ebiten.KeyW,
	game.KeyS:     ebiten.KeyS,
	game.KeyD:     ebiten.KeyD,
}

// Keyboard reads held keys from Ebiten. When Suppressed returns true the
// keyboard reports nothing held, so an overlay can own the input.
type Keyboard struct {
	Suppressed func() bool
}

func (k *Keyboard) Pressed(key game.Key) bool {
	if k.Suppressed != nil && k.Suppressed() {
		return false
	}
	ek, ok := keyBindings[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(ek)
}

// LayoutViewport tracks the size Ebiten reports through Layout.
type LayoutViewport struct {
	width, height int
}

func NewLayoutViewport(width, height int) *LayoutViewport {
	return &LayoutViewport{width: width, height: height}
}

func (v *LayoutViewport) Size() (float64, float64, bool) {
	if v.width <= 0 || v.height <= 0 {
		return 0, 0, false
	}
	return float64(v.width), float64(v.height), true
}

func (v *LayoutViewport) resize(width, height int) {
	v.width = width
	v.height = height
}

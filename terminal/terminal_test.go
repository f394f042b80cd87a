package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skyraid/game"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestKeyTrackerHoldWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	tracker := NewKeyTracker(100 * time.Millisecond)
	tracker.now = clock.now

	assert.True(t, tracker.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, tracker.Pressed(game.KeyLeft))
	assert.False(t, tracker.Pressed(game.KeyRight))

	clock.t = clock.t.Add(100 * time.Millisecond)
	assert.True(t, tracker.Pressed(game.KeyLeft))

	clock.t = clock.t.Add(time.Millisecond)
	assert.False(t, tracker.Pressed(game.KeyLeft))

	tracker.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	assert.True(t, tracker.Pressed(game.KeyD))

	tracker.Release()
	assert.False(t, tracker.Pressed(game.KeyD))
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), game.KeyW, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.KeyA, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), game.KeyS, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		got, ok := translateKey(tt.ev)
		assert.Equal(t, tt.ok, ok)
		if tt.ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

type cell struct {
	glyph rune
	style tcell.Style
}

type recordingCanvas struct {
	cells   map[[2]int]cell
	cleared int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{cells: make(map[[2]int]cell)}
}

func (c *recordingCanvas) Clear() {
	c.cleared++
	clear(c.cells)
}

func (c *recordingCanvas) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{glyph: mainc, style: style}
}

func TestRendererDraw(t *testing.T) {
	r := NewRenderer()
	canvas := newRecordingCanvas()

	snap := game.Snapshot{
		Width:          800,
		Height:         600,
		PlayerPosition: game.Vec2{X: 400, Y: 300},
		PlayerFrame:    2,
		Enemies: []game.EnemyView{
			{Id: 1, Position: game.Vec2{X: 105, Y: 590}, Variant: game.VariantDrone},
			{Id: 2, Position: game.Vec2{X: 50, Y: -10}, Variant: game.VariantBomber},
		},
	}

	r.Draw(canvas, 80, 30, snap, "")

	assert.Equal(t, 1, canvas.cleared)
	assert.Equal(t, '\\', canvas.cells[[2]int{40, 15}].glyph)
	assert.Equal(t, 'o', canvas.cells[[2]int{10, 0}].glyph)
	assert.Len(t, canvas.cells, 2)
}

func TestRendererStatusLine(t *testing.T) {
	r := NewRenderer()
	canvas := newRecordingCanvas()

	r.Draw(canvas, 3, 5, game.Snapshot{Height: 100, PlayerPosition: game.Vec2{X: -50}}, "hello")

	assert.Equal(t, 'h', canvas.cells[[2]int{0, 0}].glyph)
	assert.Equal(t, 'l', canvas.cells[[2]int{2, 0}].glyph)
	assert.Len(t, canvas.cells, 3)
}

type fixedSize struct{ cols, rows int }

func (f fixedSize) Size() (int, int) { return f.cols, f.rows }

func TestScreenViewport(t *testing.T) {
	v := ScreenViewport{Screen: fixedSize{80, 30}, Renderer: NewRenderer()}
	w, h, ok := v.Size()
	assert.True(t, ok)
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	_, _, ok = ScreenViewport{Screen: fixedSize{}, Renderer: NewRenderer()}.Size()
	assert.False(t, ok)

	_, _, ok = ScreenViewport{}.Size()
	assert.False(t, ok)
}

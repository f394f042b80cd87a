package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skyraid/game"
)

const (
	// DefaultCellWidth and DefaultCellHeight are the world units covered by
	// one terminal cell. Cells are roughly twice as tall as they are wide.
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// Canvas is the subset of tcell.Screen the renderer draws on.
type Canvas interface {
	Clear()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 200, 255)).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

	variantGlyphs = map[game.Variant]rune{
		game.VariantInterceptor: 'V',
		game.VariantBomber:      'W',
		game.VariantGunship:     'H',
		game.VariantDrone:       'o',
		game.VariantCruiser:     'Y',
	}

	variantStyles = map[game.Variant]tcell.Style{
		game.VariantInterceptor: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 90, 90)),
		game.VariantBomber:      tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 120, 255)),
		game.VariantGunship:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 80)),
		game.VariantDrone:       tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 255, 160)),
		game.VariantCruiser:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 140, 200)),
	}

	playerGlyphs = [...]rune{'A', '/', '\\'}
)

// Renderer maps world coordinates onto terminal cells.
type Renderer struct {
	CellWidth, CellHeight float64
}

func NewRenderer() *Renderer {
	return &Renderer{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// Cell converts a world position to a column and row. Row 0 is the top line.
func (r *Renderer) Cell(pos game.Vec2, worldHeight float64) (int, int) {
	col := int(math.Floor(pos.X / r.CellWidth))
	row := int(math.Floor((worldHeight - pos.Y) / r.CellHeight))
	return col, row
}

// Draw paints one frame. Positions outside cols x rows are skipped.
func (r *Renderer) Draw(canvas Canvas, cols, rows int, snap game.Snapshot, status string) {
	canvas.Clear()

	put := func(pos game.Vec2, glyph rune, style tcell.Style) {
		col, row := r.Cell(pos, snap.Height)
		if col < 0 || col >= cols || row < 0 || row >= rows {
			return
		}
		canvas.SetContent(col, row, glyph, nil, style)
	}

	for _, enemy := range snap.Enemies {
		glyph, ok := variantGlyphs[enemy.Variant]
		if !ok {
			glyph = '?'
		}
		put(enemy.Position, glyph, variantStyles[enemy.Variant])
	}

	frame := snap.PlayerFrame
	if frame < 0 || frame >= len(playerGlyphs) {
		frame = 0
	}
	put(snap.PlayerPosition, playerGlyphs[frame], playerStyle)

	for i, ch := range status {
		if i >= cols {
			break
		}
		canvas.SetContent(i, 0, ch, nil, statusStyle)
	}
}

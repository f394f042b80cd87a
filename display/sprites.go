package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/skyraid/game"
)

const enemySize = 48

var (
	playerColor = color.RGBA{120, 200, 255, 255}
	engineColor = color.RGBA{255, 170, 60, 255}

	variantColors = map[game.Variant]color.RGBA{
		game.VariantInterceptor: {255, 90, 90, 255},
		game.VariantBomber:      {200, 120, 255, 255},
		game.VariantGunship:     {255, 200, 80, 255},
		game.VariantDrone:       {120, 255, 160, 255},
		game.VariantCruiser:     {255, 140, 200, 255},
		game.VariantUnknown:     {160, 160, 160, 255},
	}
)

// painter draws flat polygons. Ebiten needs a source image for DrawTriangles,
// so a 1x1 white image is kept around and tinted per vertex.
type painter struct {
	white *ebiten.Image
}

func newPainter() *painter {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &painter{white: white}
}

func (p *painter) polygon(dst *ebiten.Image, c color.RGBA, points ...[2]float32) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, pt := range points[1:] {
		path.LineTo(pt[0], pt[1])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(c.R) / 255
		vertices[i].ColorG = float32(c.G) / 255
		vertices[i].ColorB = float32(c.B) / 255
		vertices[i].ColorA = float32(c.A) / 255
	}

	dst.DrawTriangles(vertices, indices, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// player draws the player ship centred on (x, y) in screen space.
// Frames 1 and 2 bank the nose right and left.
func (p *painter) player(dst *ebiten.Image, x, y, size float32, frame int) {
	half := size / 2
	bank := float32(0)
	switch frame {
	case 1:
		bank = size / 6
	case 2:
		bank = -size / 6
	}

	p.polygon(dst, playerColor,
		[2]float32{x + bank, y - half},
		[2]float32{x + half, y + half},
		[2]float32{x, y + half/2},
		[2]float32{x - half, y + half},
	)
	vector.DrawFilledCircle(dst, x, y+half*0.7, size/10, engineColor, true)
}

// enemy draws an enemy ship nose-down centred on (x, y) in screen space.
func (p *painter) enemy(dst *ebiten.Image, x, y float32, variant game.Variant) {
	c, ok := variantColors[variant]
	if !ok {
		c = variantColors[game.VariantUnknown]
	}
	half := float32(enemySize / 2)

	switch variant {
	case game.VariantInterceptor:
		p.polygon(dst, c,
			[2]float32{x, y + half},
			[2]float32{x + half/2, y - half},
			[2]float32{x - half/2, y - half},
		)
	case game.VariantBomber:
		p.polygon(dst, c,
			[2]float32{x, y + half/2},
			[2]float32{x + half, y - half/2},
			[2]float32{x - half, y - half/2},
		)
		vector.DrawFilledRect(dst, x-half/4, y-half, half/2, half, c, true)
	case game.VariantGunship:
		vector.DrawFilledRect(dst, x-half*0.6, y-half*0.6, half*1.2, half*1.2, c, true)
		vector.StrokeLine(dst, x-half/3, y, x-half/3, y+half, 3, c, true)
		vector.StrokeLine(dst, x+half/3, y, x+half/3, y+half, 3, c, true)
	case game.VariantDrone:
		vector.DrawFilledCircle(dst, x, y, half*0.6, c, true)
		vector.StrokeCircle(dst, x, y, half*0.9, 2, c, true)
	case game.VariantCruiser:
		p.polygon(dst, c,
			[2]float32{x, y + half},
			[2]float32{x + half*0.4, y},
			[2]float32{x + half*0.4, y - half},
			[2]float32{x - half*0.4, y - half},
			[2]float32{x - half*0.4, y},
		)
	default:
		vector.StrokeRect(dst, x-half/2, y-half/2, half, half, 2, c, true)
	}
}

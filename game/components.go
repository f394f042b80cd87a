package game

import (
	"fmt"
	"math"
)

const (
	DefaultPlayerSpeed = 500.0
	DefaultEnemySpeed  = 300.0
	DefaultEnemyCount  = 4
	DefaultPlayerSize  = 64.0
)

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector if v has zero length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Down is the fixed heading of every enemy.
var Down = Vec2{X: 0, Y: -1}

type Player struct {
	Position Vec2
	Speed    float64
	// Frame is the sprite-sheet frame: 0 level, 1 banking right, 2 banking left.
	Frame int
}

type Enemy struct {
	Position Vec2
	// Direction is a unit vector fixed at spawn.
	Direction Vec2
	Speed     float64
	Variant   Variant
}

// Variant identifies the visual kind of an enemy ship.
type Variant uint8

const (
	VariantInterceptor Variant = iota
	VariantBomber
	VariantGunship
	VariantDrone
	VariantCruiser
	// VariantUnknown is the fallback for an out-of-range draw.
	VariantUnknown
)

// VariantCount is the number of enemy kinds the spawner chooses from.
const VariantCount = 5

var variantNames = [...]string{
	VariantInterceptor: "interceptor",
	VariantBomber:      "bomber",
	VariantGunship:     "gunship",
	VariantDrone:       "drone",
	VariantCruiser:     "cruiser",
	VariantUnknown:     "unknown",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return variantNames[VariantUnknown]
}

// VariantFromIndex maps a random draw to an enemy kind. Indices outside
// 0..VariantCount-1 saturate to VariantUnknown and report ErrInvalidVariant.
func VariantFromIndex(index uint32) (Variant, error) {
	if index >= VariantCount {
		return VariantUnknown, fmt.Errorf("%w: %d", ErrInvalidVariant, index)
	}
	return Variant(index), nil
}

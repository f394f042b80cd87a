package game

import "time"

// Key is one of the directional keys the game reads.
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyW
	KeyS
	KeyD
)

// AllKeys lists every key an Input is queried for.
var AllKeys = [...]Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyA, KeyW, KeyS, KeyD}

// Keys is the set of keys held during a frame.
type Keys uint8

func (k Keys) Has(key Key) bool {
	return k&(1<<key) != 0
}

func (k Keys) With(key Key) Keys {
	return k | 1<<key
}

// Input reports whether a key is currently held.
type Input interface {
	Pressed(key Key) bool
}

// Viewport reports the current drawable size. ok is false when no window exists.
type Viewport interface {
	Size() (width, height float64, ok bool)
}

// Clock reports the seconds elapsed since the previous frame.
type Clock interface {
	Delta() float64
}

// Random is the randomness source used by the spawner.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	Float64() float64
	Uint32() uint32
}

// SampleInput reads every known key from in.
func SampleInput(in Input) Keys {
	var keys Keys
	if in == nil {
		return keys
	}
	for _, key := range AllKeys {
		if in.Pressed(key) {
			keys = keys.With(key)
		}
	}
	return keys
}

// FixedViewport is a Viewport with a constant size. The zero value reports no window.
type FixedViewport struct {
	Width, Height float64
}

func (v FixedViewport) Size() (float64, float64, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	return v.Width, v.Height, true
}

// HeldKeys is an Input whose held set is assigned directly.
type HeldKeys struct {
	Keys Keys
}

func (h *HeldKeys) Pressed(key Key) bool {
	return h.Keys.Has(key)
}

// Hold replaces the held set.
func (h *HeldKeys) Hold(keys ...Key) {
	h.Keys = 0
	for _, key := range keys {
		h.Keys = h.Keys.With(key)
	}
}

// FixedClock always reports the same step.
type FixedClock float64

func (c FixedClock) Delta() float64 {
	return float64(c)
}

// WallClock measures real time between calls to Delta.
type WallClock struct {
	last time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{last: time.Now()}
}

func (c *WallClock) Delta() float64 {
	now := time.Now()
	delta := now.Sub(c.last).Seconds()
	c.last = now
	return delta
}

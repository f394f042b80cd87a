// Package terminal runs a simulation in a text terminal through tcell.
package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skyraid/game"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat on common keyboard settings.
const DefaultHoldWindow = 300 * time.Millisecond

// KeyTracker turns terminal key events into held-key state. Terminals only
// report presses and auto-repeats, so a key counts as held until no event
// for it has arrived within the hold window.
type KeyTracker struct {
	mu       sync.Mutex
	lastSeen map[game.Key]time.Time
	window   time.Duration
	now      func() time.Time
}

func NewKeyTracker(window time.Duration) *KeyTracker {
	return &KeyTracker{
		lastSeen: make(map[game.Key]time.Time),
		window:   window,
		now:      time.Now,
	}
}

// HandleKey records a key event. It returns false for events that are not
// game keys.
func (k *KeyTracker) HandleKey(ev *tcell.EventKey) bool {
	key, ok := translateKey(ev)
	if !ok {
		return false
	}

	k.mu.Lock()
	k.lastSeen[key] = k.now()
	k.mu.Unlock()
	return true
}

func (k *KeyTracker) Pressed(key game.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	seen, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	return k.now().Sub(seen) <= k.window
}

// Release forgets every held key.
func (k *KeyTracker) Release() {
	k.mu.Lock()
	clear(k.lastSeen)
	k.mu.Unlock()
}

func translateKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return game.KeyA, true
		case 'w', 'W':
			return game.KeyW, true
		case 's', 'S':
			return game.KeyS, true
		case 'd', 'D':
			return game.KeyD, true
		}
	}
	return 0, false
}

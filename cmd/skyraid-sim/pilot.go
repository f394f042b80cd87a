package main

import (
	"time"

	"github.com/plus3/skyraid/game"
)

// sweepPilot holds Right, then Left, then Up, then Down, switching after
// every period of simulated time.
type sweepPilot struct {
	period  time.Duration
	elapsed time.Duration
}

var sweepOrder = []game.Key{game.KeyRight, game.KeyLeft, game.KeyUp, game.KeyDown}

func newSweepPilot(period time.Duration) *sweepPilot {
	return &sweepPilot{period: period}
}

func (p *sweepPilot) advance(dt time.Duration) {
	p.elapsed += dt
}

func (p *sweepPilot) Pressed(key game.Key) bool {
	if p.period <= 0 {
		return false
	}
	phase := int(p.elapsed/p.period) % len(sweepOrder)
	return sweepOrder[phase] == key
}

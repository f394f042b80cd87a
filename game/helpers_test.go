package game_test

import (
	"bytes"
	"log"
	"math/rand/v2"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

const epsilon = 1e-9

// scriptedRandom replays fixed draws, cycling when exhausted.
type scriptedRandom struct {
	floats []float64
	uints  []uint32
	fi, ui int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) Uint32() uint32 {
	v := r.uints[r.ui%len(r.uints)]
	r.ui++
	return v
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

type recordingListener struct {
	spawned []ecs.EntityId
	reaped  []ecs.EntityId
}

func (l *recordingListener) EnemySpawned(id ecs.EntityId, _ game.Enemy) {
	l.spawned = append(l.spawned, id)
}

func (l *recordingListener) EnemyReaped(id ecs.EntityId, _ game.Enemy) {
	l.reaped = append(l.reaped, id)
}

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

// newSim builds an 800x600 simulation with no enemies.
func newSim(input game.Input) (*game.Simulation, *bytes.Buffer, error) {
	cfg := game.DefaultConfig()
	cfg.EnemyCount = 0
	logger, buf := bufferLogger()
	sim, err := game.New(cfg, game.Options{
		Viewport: game.FixedViewport{Width: 800, Height: 600},
		Input:    input,
		Random:   seeded(1),
		Logger:   logger,
	})
	return sim, buf, err
}

// listenerFunc forwards reap events to a function.
type listenerFunc func(game.Enemy)

func (f listenerFunc) EnemySpawned(ecs.EntityId, game.Enemy) {}

func (f listenerFunc) EnemyReaped(_ ecs.EntityId, enemy game.Enemy) {
	f(enemy)
}

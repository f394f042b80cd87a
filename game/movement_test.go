package game_test

import (
	"math"
	"testing"

	"github.com/plus3/skyraid/game"
	"github.com/stretchr/testify/assert"
)

func keys(ks ...game.Key) game.Keys {
	var held game.Keys
	for _, k := range ks {
		held = held.With(k)
	}
	return held
}

func TestPlayerDirection(t *testing.T) {
	diag := 1 / math.Sqrt2

	tests := []struct {
		name string
		keys game.Keys
		want game.Vec2
	}{
		{"idle", keys(), game.Vec2{}},
		{"left", keys(game.KeyLeft), game.Vec2{X: -1}},
		{"right alias", keys(game.KeyD), game.Vec2{X: 1}},
		{"up", keys(game.KeyUp), game.Vec2{Y: 1}},
		{"down alias", keys(game.KeyS), game.Vec2{Y: -1}},
		{"opposing cancel", keys(game.KeyLeft, game.KeyRight), game.Vec2{}},
		{"opposing cancel with aliases", keys(game.KeyW, game.KeyDown), game.Vec2{}},
		{"arrow and alias do not stack", keys(game.KeyLeft, game.KeyA), game.Vec2{X: -1}},
		{"up right", keys(game.KeyUp, game.KeyRight), game.Vec2{X: diag, Y: diag}},
		{"three keys", keys(game.KeyLeft, game.KeyRight, game.KeyUp), game.Vec2{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.PlayerDirection(tt.keys)
			assert.InDelta(t, tt.want.X, got.X, epsilon)
			assert.InDelta(t, tt.want.Y, got.Y, epsilon)
		})
	}
}

func TestDiagonalSpeedMatchesAxisSpeed(t *testing.T) {
	start := game.Vec2{X: 100, Y: 100}
	dt := 0.37

	axis := game.Integrate(start, game.PlayerDirection(keys(game.KeyRight)), game.DefaultPlayerSpeed, dt)
	diagonal := game.Integrate(start, game.PlayerDirection(keys(game.KeyRight, game.KeyUp)), game.DefaultPlayerSpeed, dt)

	axisDist := game.Vec2{X: axis.X - start.X, Y: axis.Y - start.Y}.Length()
	diagDist := game.Vec2{X: diagonal.X - start.X, Y: diagonal.Y - start.Y}.Length()

	assert.InDelta(t, axisDist, diagDist, 1e-6)
	assert.InDelta(t, game.DefaultPlayerSpeed*dt, diagDist, 1e-6)
}

func TestMovementSplitsAcrossFrames(t *testing.T) {
	held := []game.Keys{
		keys(game.KeyRight),
		keys(game.KeyUp, game.KeyLeft),
		keys(game.KeyDown, game.KeyD),
		keys(),
	}
	splits := [][2]float64{{0, 0}, {0.5, 0.5}, {0.016, 0.984}, {1.25, 0.003}, {2, 0}}

	for _, k := range held {
		for _, split := range splits {
			once := &game.Player{Position: game.Vec2{X: 10, Y: 20}, Speed: game.DefaultPlayerSpeed}
			twice := *once

			game.MovePlayer(once, k, split[0]+split[1])
			game.MovePlayer(&twice, k, split[0])
			game.MovePlayer(&twice, k, split[1])

			assert.InDelta(t, once.Position.X, twice.Position.X, 1e-6)
			assert.InDelta(t, once.Position.Y, twice.Position.Y, 1e-6)
		}
	}

	for _, split := range splits {
		once := &game.Enemy{Position: game.Vec2{X: 5, Y: 500}, Direction: game.Down, Speed: game.DefaultEnemySpeed}
		twice := *once

		game.MoveEnemy(once, split[0]+split[1])
		game.MoveEnemy(&twice, split[0])
		game.MoveEnemy(&twice, split[1])

		assert.InDelta(t, once.Position.Y, twice.Position.Y, 1e-6)
		assert.Equal(t, once.Position.X, twice.Position.X)
	}
}

func TestAnimationFrame(t *testing.T) {
	assert.Equal(t, 0, game.AnimationFrame(keys()))
	assert.Equal(t, 0, game.AnimationFrame(keys(game.KeyUp)))
	assert.Equal(t, 2, game.AnimationFrame(keys(game.KeyLeft)))
	assert.Equal(t, 1, game.AnimationFrame(keys(game.KeyD)))
	assert.Equal(t, 1, game.AnimationFrame(keys(game.KeyA, game.KeyRight)))
}

func TestSampleInput(t *testing.T) {
	held := &game.HeldKeys{}
	held.Hold(game.KeyW, game.KeyLeft)

	sampled := game.SampleInput(held)
	assert.True(t, sampled.Has(game.KeyW))
	assert.True(t, sampled.Has(game.KeyLeft))
	assert.False(t, sampled.Has(game.KeyRight))

	assert.Equal(t, game.Keys(0), game.SampleInput(nil))
}

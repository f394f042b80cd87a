package game_test

import (
	"testing"

	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaperBoundaryIsStrict(t *testing.T) {
	sim, logs, err := newSim(nil)
	require.NoError(t, err)

	world := sim.World()
	listener := &recordingListener{}
	world.AddListener(listener)

	below := world.InsertEnemy(game.Enemy{Position: game.Vec2{X: 10, Y: -0.001}, Direction: game.Down})
	onEdge := world.InsertEnemy(game.Enemy{Position: game.Vec2{X: 20, Y: 0}, Direction: game.Down})
	above := world.InsertEnemy(game.Enemy{Position: game.Vec2{X: 30, Y: 0.001}, Direction: game.Down})

	require.NoError(t, sim.Step(0))

	assert.Nil(t, world.Enemy(below))
	assert.NotNil(t, world.Enemy(onEdge))
	assert.NotNil(t, world.Enemy(above))
	assert.Equal(t, 1, sim.Reaped())
	assert.Len(t, listener.reaped, 1)
	assert.Equal(t, below, listener.reaped[0])
	assert.Contains(t, logs.String(), "reached the bottom of the screen")
}

func TestReaperIgnoresElapsedTime(t *testing.T) {
	sim, _, err := newSim(nil)
	require.NoError(t, err)

	world := sim.World()
	id := world.InsertEnemy(game.Enemy{Position: game.Vec2{Y: 500}})

	for range 100 {
		require.NoError(t, sim.Step(10))
	}
	assert.NotNil(t, world.Enemy(id))
	assert.Equal(t, 0, sim.Reaped())
}

func TestEscapedEnemies(t *testing.T) {
	world := game.NewWorld(800, 600)
	world.InsertEnemy(game.Enemy{Position: game.Vec2{Y: 5}})
	gone := world.InsertEnemy(game.Enemy{Position: game.Vec2{Y: -5}})

	assert.Equal(t, []ecs.EntityId{gone}, game.EscapedEnemies(world))
}

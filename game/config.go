package game

import (
	"flag"
	"fmt"
)

// Config holds the tunable constants of a run.
type Config struct {
	PlayerSpeed float64
	EnemySpeed  float64
	EnemyCount  int
	// PlayerSize is the edge length of the player sprite; half of it is kept
	// clear of the viewport edges.
	PlayerSize float64
	// Seed seeds the spawner. Zero picks a random seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		PlayerSpeed: DefaultPlayerSpeed,
		EnemySpeed:  DefaultEnemySpeed,
		EnemyCount:  DefaultEnemyCount,
		PlayerSize:  DefaultPlayerSize,
	}
}

func (c Config) Validate() error {
	switch {
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: player speed %v is negative", ErrInvalidConfig, c.PlayerSpeed)
	case c.EnemySpeed < 0:
		return fmt.Errorf("%w: enemy speed %v is negative", ErrInvalidConfig, c.EnemySpeed)
	case c.EnemyCount < 0:
		return fmt.Errorf("%w: enemy count %d is negative", ErrInvalidConfig, c.EnemyCount)
	case c.PlayerSize < 0:
		return fmt.Errorf("%w: player size %v is negative", ErrInvalidConfig, c.PlayerSize)
	}
	return nil
}

// Margin is the distance the player's centre keeps from the viewport edges.
func (c Config) Margin() float64 {
	return c.PlayerSize / 2
}

// BindFlags registers a command-line flag for every field, using the current
// values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.PlayerSpeed, "player-speed", c.PlayerSpeed, "Player speed in units per second.")
	fs.Float64Var(&c.EnemySpeed, "enemy-speed", c.EnemySpeed, "Enemy speed in units per second.")
	fs.IntVar(&c.EnemyCount, "enemies", c.EnemyCount, "Number of enemies spawned at startup.")
	fs.Float64Var(&c.PlayerSize, "player-size", c.PlayerSize, "Player sprite size; half of it is kept clear of the edges.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Spawner seed. 0 picks a random seed.")
}

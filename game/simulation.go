package game

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/skyraid/ecs"
)

// Options supplies the external collaborators of a Simulation.
// Viewport is required; the rest have defaults.
type Options struct {
	Viewport Viewport
	Input    Input
	Clock    Clock
	Random   Random
	// Logger receives informational events. Defaults to log.Default().
	Logger    *log.Logger
	Listeners []Listener
}

// Simulation owns the world and runs one pass of every system per frame.
type Simulation struct {
	cfg       Config
	world     *World
	scheduler *ecs.Scheduler[*World]
	viewport  Viewport
	clock     Clock
	reaper    *ReaperSystem
	spawned   int
}

// New validates cfg, spawns the player at the viewport centre and spawns the
// enemy batch. It fails with ErrNotFound if the viewport reports no window.
func New(cfg Config, opts Options) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Viewport == nil {
		return nil, fmt.Errorf("viewport: %w", ErrNotFound)
	}

	width, height, ok := opts.Viewport.Size()
	if !ok {
		return nil, fmt.Errorf("viewport: %w", ErrNotFound)
	}

	rng := opts.Random
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewWallClock()
	}

	world := NewWorld(width, height)
	for _, l := range opts.Listeners {
		world.AddListener(l)
	}

	if _, err := world.SpawnPlayer(Vec2{X: width / 2, Y: height / 2}, cfg.PlayerSpeed); err != nil {
		return nil, err
	}
	ids := SpawnEnemies(world, cfg.EnemyCount, width, height, cfg.EnemySpeed, rng)

	reaper := &ReaperSystem{Logger: logger}

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&InputSystem{Input: opts.Input})
	scheduler.Register(&PlayerMovementSystem{})
	scheduler.Register(&EnemyMovementSystem{})
	scheduler.Register(&BoundaryClampSystem{Margin: cfg.Margin()})
	scheduler.Register(reaper)

	return &Simulation{
		cfg:       cfg,
		world:     world,
		scheduler: scheduler,
		viewport:  opts.Viewport,
		clock:     clock,
		reaper:    reaper,
		spawned:   len(ids),
	}, nil
}

// Step runs one frame that lasted dt seconds. Negative dt is treated as zero.
func (s *Simulation) Step(dt float64) error {
	if err := s.prepare(dt); err != nil {
		return err
	}
	s.scheduler.Once(max(dt, 0))
	return nil
}

// prepare re-reads the viewport and checks the player before a frame runs.
func (s *Simulation) prepare(float64) error {
	width, height, ok := s.viewport.Size()
	if !ok {
		return fmt.Errorf("viewport: %w", ErrNotFound)
	}
	if _, err := s.world.Player(); err != nil {
		return err
	}

	s.world.Width = width
	s.world.Height = height
	return nil
}

// Tick runs one frame using the elapsed time reported by the clock.
func (s *Simulation) Tick() error {
	return s.Step(s.clock.Delta())
}

func (s *Simulation) World() *World {
	return s.world
}

func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) Stats() *ecs.SchedulerStats {
	return s.scheduler.GetStats()
}

// Spawned returns the number of enemies created since start.
func (s *Simulation) Spawned() int {
	return s.spawned
}

// Reaped returns the number of enemies removed by the reaper since start.
func (s *Simulation) Reaped() int {
	return s.reaper.Reaped
}

// Run steps the simulation at the given interval until the context is
// cancelled or the viewport goes away.
func (s *Simulation) Run(ctx context.Context, interval time.Duration) error {
	return s.scheduler.Run(ctx, interval, s.prepare)
}

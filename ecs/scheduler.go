package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	FrameCount      int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in a fixed order over a single state value.
// All systems of a frame run on the calling goroutine; frames never overlap.
type Scheduler[S Deleter] struct {
	state       S
	systems     []System[S]
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates a new scheduler for the given state.
func NewScheduler[S Deleter](state S) *Scheduler[S] {
	return &Scheduler[S]{
		state:   state,
		systems: make([]System[S], 0),
	}
}

// Register appends a system to the execution order.
func (s *Scheduler[S]) Register(system System[S]) {
	if system == nil {
		panic("cannot register a nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time,
// then flushes the frame's commands.
func (s *Scheduler[S]) Once(dt float64) {
	frame := newUpdateFrame(dt, s.state)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.state)
	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// If prepare is non-nil it is called before every frame; an error from it stops
// the loop before that frame's systems run and is returned.
func (s *Scheduler[S]) Run(ctx context.Context, interval time.Duration, prepare func(dt float64) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if prepare != nil {
				if err := prepare(dt); err != nil {
					return err
				}
			}
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler[S]) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/skyraid/game"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)

	duration := flag.Duration("duration", 10*time.Second, "Simulated time to run for.")
	step := flag.Duration("step", time.Second/60, "Fixed frame time.")
	width := flag.Float64("width", 800, "Viewport width in world units.")
	height := flag.Float64("height", 600, "Viewport height in world units.")
	sweep := flag.Duration("sweep", 1500*time.Millisecond, "How long the pilot holds each direction.")
	verbose := flag.Bool("v", false, "Log reaper events.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Profile the run: cpu, mem, block, mutex, trace or thread.")
	profileDir := flag.String("profile-dir", ".", "Directory the profile is written to.")
	flag.Parse()

	if err := validateTiming(*duration, *step); err != nil {
		log.Fatalf("Invalid timing: %v", err)
	}

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *verbose {
		logger = log.Default()
	}

	pilot := newSweepPilot(*sweep)
	sim, err := game.New(cfg, game.Options{
		Viewport: game.FixedViewport{Width: *width, Height: *height},
		Input:    pilot,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Step:           *step,
		Width:          *width,
		Height:         *height,
		Config:         cfg,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, int(*duration / *step)),
		},
	}

	prof, err := startProfile(*profileMode, *profileDir)
	if err != nil {
		log.Fatalf("Failed to start profiling: %v", err)
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s of game time...\n", *duration)
	startTime := time.Now()
	dt := step.Seconds()

	for elapsed := time.Duration(0); elapsed < *duration; elapsed += *step {
		pilot.advance(*step)

		updateStart := time.Now()
		if err := sim.Step(dt); err != nil {
			log.Fatalf("Simulation step failed: %v", err)
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
	}

	report.TotalTime = time.Since(startTime)
	prof.Stop()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Spawned = sim.Spawned()
	report.Reaped = sim.Reaped()
	report.Final = sim.Snapshot()
	report.Scheduler = sim.Stats()

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// validateTiming rejects durations the frame loop cannot run.
func validateTiming(duration, step time.Duration) error {
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %s", step)
	}
	if duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", duration)
	}
	return nil
}

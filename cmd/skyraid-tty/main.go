package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/skyraid/audio"
	"github.com/plus3/skyraid/game"
	"github.com/plus3/skyraid/terminal"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	hold := flag.Duration("hold", terminal.DefaultHoldWindow, "How long a key counts as held after its last event.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logFile := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	// The terminal owns stdout and stderr while the game runs.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	renderer := terminal.NewRenderer()
	keys := terminal.NewKeyTracker(*hold)

	opts := game.Options{
		Viewport: terminal.ScreenViewport{Screen: screen, Renderer: renderer},
		Input:    keys,
		Logger:   logger,
	}

	if !*mute {
		cues := audio.NewCues(-0.7)
		if err := cues.Initialize(); err != nil {
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Close()
		}
		opts.Listeners = append(opts.Listeners, cues)
	}

	sim, err := game.New(cfg, opts)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	err = run(screen, sim, renderer, keys)
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, sim *game.Simulation, renderer *terminal.Renderer, keys *terminal.KeyTracker) error {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	clock := game.NewWallClock()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				keys.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if err := sim.Step(clock.Delta()); err != nil {
				return err
			}

			cols, rows := screen.Size()
			snap := sim.Snapshot()
			status := fmt.Sprintf(" enemies: %d  reaped: %d  (q to quit)", len(snap.Enemies), sim.Reaped())
			renderer.Draw(screen, cols, rows, snap, status)
			screen.Show()
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyraid/audio"
	"github.com/plus3/skyraid/debugui"
	"github.com/plus3/skyraid/display"
	"github.com/plus3/skyraid/game"
)

const title = "skyraid"

func main() {
	cfg := game.DefaultConfig()
	cfg.BindFlags(flag.CommandLine)
	width := flag.Int("width", 800, "Window width.")
	height := flag.Int("height", 600, "Window height.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	viewport := display.NewLayoutViewport(*width, *height)
	keyboard := &display.Keyboard{}

	opts := game.Options{
		Viewport: viewport,
		Input:    keyboard,
	}

	var cues *audio.Cues
	if !*mute {
		cues = audio.NewCues(-0.7)
		if err := cues.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Close()
		}
		opts.Listeners = append(opts.Listeners, cues)
	}

	sim, err := game.New(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	g := display.NewGame(sim, viewport)

	if *debug {
		overlay := debugui.NewOverlay(sim, title, *width, *height)
		keyboard.Suppressed = overlay.WantCaptureKeyboard
		g.Overlay = overlay
	} else {
		ebiten.SetWindowSize(*width, *height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}

// Package audio plays short synthesized cues for enemy lifecycle events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/skyraid/ecs"
	"github.com/plus3/skyraid/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	spawnCueLength = 60 * time.Millisecond
	reapCueLength  = 120 * time.Millisecond
	reapFrequency  = 196
)

// Each enemy kind announces itself on its own note.
var spawnFrequencies = map[game.Variant]float64{
	game.VariantInterceptor: 880,
	game.VariantBomber:      587.33,
	game.VariantGunship:     659.25,
	game.VariantDrone:       783.99,
	game.VariantCruiser:     523.25,
}

// Cues implements game.Listener. Until Initialize succeeds every cue is a no-op,
// so the game runs without sound when no audio device is available.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
}

// NewCues creates a cue player. gain is added to the unit amplitude; -0.7
// plays at 30% volume.
func NewCues(gain float64) *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
		gain:  gain,
	}
}

// Initialize opens the audio device.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func (c *Cues) EnemySpawned(_ ecs.EntityId, enemy game.Enemy) {
	freq, ok := spawnFrequencies[enemy.Variant]
	if !ok {
		freq = reapFrequency * 2
	}
	c.play(freq, spawnCueLength)
}

func (c *Cues) EnemyReaped(_ ecs.EntityId, _ game.Enemy) {
	c.play(reapFrequency, reapCueLength)
}

func (c *Cues) play(freq float64, length time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	streamer, err := tone(freq, length, c.gain)
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}

// tone returns a sine wave of the given frequency cut to length.
func tone(freq float64, length time.Duration, gain float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Gain:     gain,
	}, nil
}

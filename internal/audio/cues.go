// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"go-bastion-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Cue — короткий тон, которым озвучивается событие симуляции.
type Cue struct {
	Freq     float64       // Гц
	Overtone float64       // вторая нота, 0 — нет
	Duration time.Duration
	Volume   float64 // 0..1
}

var cues = map[event.EventType]Cue{
	event.TowerFired:    {Freq: 880, Duration: 35 * time.Millisecond, Volume: 0.15},
	event.EnemyKilled:   {Freq: 660, Overtone: 990, Duration: 90 * time.Millisecond, Volume: 0.3},
	event.EnemyBreached: {Freq: 110, Duration: 300 * time.Millisecond, Volume: 0.6},
	event.WaveStarted:   {Freq: 220, Overtone: 330, Duration: 700 * time.Millisecond, Volume: 0.5},
	event.WaveEnded:     {Freq: 440, Overtone: 660, Duration: 300 * time.Millisecond, Volume: 0.4},
	event.TowerPlaced:   {Freq: 523, Duration: 80 * time.Millisecond, Volume: 0.3},
	event.TowerUpgraded: {Freq: 784, Overtone: 1046, Duration: 120 * time.Millisecond, Volume: 0.3},
	event.TowerRemoved:  {Freq: 330, Duration: 120 * time.Millisecond, Volume: 0.3},
	event.GameOver:      {Freq: 82, Overtone: 98, Duration: 1200 * time.Millisecond, Volume: 0.7},
	event.LevelCleared:  {Freq: 1046, Overtone: 1318, Duration: 500 * time.Millisecond, Volume: 0.5},
}

// CueFor returns the cue for an event type; EnemySpawned and unknown types
// are silent.
func CueFor(t event.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// Streamer synthesizes the cue at rate.
func (c Cue) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	fund, err := c.voice(rate, c.Freq)
	if err != nil {
		return nil, err
	}
	if c.Overtone <= 0 {
		return newVolume(fund, c.Volume), nil
	}
	over, err := c.voice(rate, c.Overtone)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), c.Volume), nil
}

func (c Cue) voice(rate beep.SampleRate, freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("cue %.0f Hz: %w", freq, err)
	}
	total := rate.N(c.Duration)
	return NewEnvelope(beep.Take(total, tone), total, rate.N(5*time.Millisecond), total/2), nil
}

// newVolume оборачивает поток громкостью; 0 даёт тишину вместо -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope — упрощённая огибающая: линейная атака и линейное затухание.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over total samples.
func NewEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		release = max(0, total-attack)
	}
	return &envelope{streamer: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// internal/audio/player.go
package audio

import (
	"sync"
	"time"

	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// MinCueGap — не чаще одного тона одного типа за этот интервал,
// иначе залп десятка башен превращается в шум.
const MinCueGap = 60 * time.Millisecond

// Player plays a cue for every simulation event it is subscribed to.
// Without an audio device it stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  map[event.EventType]time.Time
	now         func() time.Time
}

func NewPlayer() *Player {
	return &Player{
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[event.EventType]time.Time),
		now:        time.Now,
	}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Subscribe registers the player for every event type.
func (p *Player) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, event.AllTypes...)
}

// OnEvent реализует интерфейс event.Listener.
func (p *Player) OnEvent(e event.Event) {
	p.Play(e.Type)
}

// SetMuted silences or restores the cues.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether cues are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues the cue for t and reports whether anything was queued.
func (p *Player) Play(t event.EventType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return false
	}
	cue, ok := CueFor(t)
	if !ok {
		return false
	}
	now := p.now()
	if last, seen := p.lastPlayed[t]; seen && now.Sub(last) < MinCueGap {
		return false
	}
	s, err := cue.Streamer(sampleRate)
	if err != nil {
		logger.Warning("Audio cue failed", "event", t, "error", err)
		return false
	}
	p.lastPlayed[t] = now

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Close stops every playing cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

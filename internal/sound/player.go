// Package sound plays a short click whenever a face bounces.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player owns the speaker. The zero value is unusable; use Open.
type Player struct {
	sr       beep.SampleRate
	duration time.Duration
	freq     float64
	volume   float64

	mu     sync.Mutex
	closed bool
}

// Open initialises the speaker at sampleRate with a 50 ms buffer.
func Open(sampleRate int, click time.Duration, freq float64) (*Player, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{
		sr:       sr,
		duration: click,
		freq:     freq,
		volume:   0.3,
	}, nil
}

// Click queues one click, pitched by ratio (1 = base frequency).
func (p *Player) Click(ratio float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Play(p.clickStreamer(ratio))
}

func (p *Player) clickStreamer(ratio float64) beep.Streamer {
	return newTone(p.sr, p.freq*ratio, p.volume, p.sr.N(p.duration))
}

// Close stops pending clicks. Further clicks are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

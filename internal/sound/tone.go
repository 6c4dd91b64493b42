package sound

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a finite sine burst with a linear fade-out, so clicks end without
// a pop.
type tone struct {
	step   float64 // phase increment per sample
	volume float64
	total  int
	pos    int
}

func newTone(sr beep.SampleRate, freq float64, volume float64, samples int) *tone {
	return &tone{
		step:   2 * math.Pi * freq / float64(sr),
		volume: volume,
		total:  samples,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := t.volume * env * math.Sin(t.step*float64(t.pos))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

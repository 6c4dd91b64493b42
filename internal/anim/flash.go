package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/face-animation/internal/face"
)

// flashes fades a highlight out over a fixed number of frames after a face
// bounces. Time is counted in frames, not seconds.
type flashes struct {
	frames float32
	tweens map[*face.Face]*gween.Tween
	levels map[*face.Face]float64
}

func newFlashes(frames int) *flashes {
	return &flashes{
		frames: float32(frames),
		tweens: map[*face.Face]*gween.Tween{},
		levels: map[*face.Face]float64{},
	}
}

// start restarts the highlight of f at full strength.
func (fl *flashes) start(f *face.Face) {
	if fl.frames <= 0 {
		return
	}
	fl.tweens[f] = gween.New(1, 0, fl.frames, ease.OutQuad)
	fl.levels[f] = 1
}

// advance moves every highlight one frame forward.
func (fl *flashes) advance() {
	for f, tw := range fl.tweens {
		v, done := tw.Update(1)
		if done {
			delete(fl.tweens, f)
			delete(fl.levels, f)
			continue
		}
		fl.levels[f] = float64(v)
	}
}

func (fl *flashes) level(f *face.Face) float64 { return fl.levels[f] }

// decorate is installed as the canvas snapshot hook.
func (fl *flashes) decorate(f *face.Face, st *face.State) {
	st.Glow = fl.level(f)
}

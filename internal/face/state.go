package face

import (
	"image/color"

	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/render"
)

// State is an immutable snapshot of a face, safe to hand to another
// goroutine for drawing.
type State struct {
	X, Y          int
	Width, Height int
	Dx, Dy        int

	// Glow in [0,1] tints the body toward config.FaceGlow. Presentation only.
	Glow float64
}

// Draw paints the body, the mouth at two thirds of the height across the
// middle half of the width, and two eyes a fifth of the size.
func (s State) Draw(dst render.Surface) {
	dst.FillOval(s.X, s.Y, s.Width, s.Height, s.bodyColor())
	dst.DrawOval(s.X, s.Y, s.Width, s.Height, config.FaceInk)

	mouthY := s.Y + (2*s.Height)/3
	dst.DrawLine(s.X+s.Width/4, mouthY, s.X+(3*s.Width)/4, mouthY, config.FaceInk)

	eyeW := s.Width / 5
	eyeH := s.Height / 5
	dst.DrawOval(s.X+eyeW, s.Y+eyeH, eyeW, eyeH, config.FaceInk)
	dst.DrawOval(s.X+3*eyeW, s.Y+eyeH, eyeW, eyeH, config.FaceInk)
}

func (s State) bodyColor() color.Color {
	if s.Glow <= 0 {
		return config.FaceFill
	}
	return lerpRGBA(config.FaceFill, config.FaceGlow, min(s.Glow, 1))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

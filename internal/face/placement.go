package face

import "github.com/iburimskiy/face-animation/internal/config"

// FromConfig builds a face from its configured placement. Unset size and
// velocity fields keep the defaults.
func FromConfig(p config.Face) *Face {
	w, h := config.DefaultFaceWidth, config.DefaultFaceHeight
	if p.Width != nil {
		w = *p.Width
	}
	if p.Height != nil {
		h = *p.Height
	}
	f := NewSized(p.X, p.Y, w, h)
	if p.Dx != nil {
		f.SetDx(*p.Dx)
	}
	if p.Dy != nil {
		f.SetDy(*p.Dy)
	}
	return f
}

// AllFromConfig builds one face per placement, in order.
func AllFromConfig(ps []config.Face) []*Face {
	faces := make([]*Face, 0, len(ps))
	for _, p := range ps {
		faces = append(faces, FromConfig(p))
	}
	return faces
}

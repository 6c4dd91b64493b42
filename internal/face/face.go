// Package face models an oval face that moves inside a rectangular drawing
// area and bounces off its edges.
//
// The coordinate system has its origin at the top-left corner of the drawing
// area, x growing to the right and y growing downward. A face is described by
// the top-left corner of its bounding box, its size, and an elementary
// displacement (dx, dy) applied once per frame.
package face

import (
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/render"
)

const (
	MinWidth  = config.MinFaceWidth
	MinHeight = config.MinFaceHeight
)

// Bounds is the drawing area a face moves in. The size is queried on every
// edge check, so a resized area is picked up on the next frame.
type Bounds interface {
	Width() int
	Height() int
}

type Face struct {
	bounds Bounds

	x, y          int
	width, height int
	dx, dy        int
}

// New creates a default face: 100×100 at (0, 0) moving by (+5, +5).
func New() *Face {
	return NewSized(0, 0, config.DefaultFaceWidth, config.DefaultFaceHeight)
}

// NewAt creates a default-sized face whose bounding box starts at (x, y).
func NewAt(x, y int) *Face {
	return NewSized(x, y, config.DefaultFaceWidth, config.DefaultFaceHeight)
}

// NewSized creates a face with the given position and size. Sizes below
// MinWidth/MinHeight are raised to the minimum.
func NewSized(x, y, width, height int) *Face {
	return &Face{
		x:      x,
		y:      y,
		width:  max(width, MinWidth),
		height: max(height, MinHeight),
		dx:     config.DefaultStep,
		dy:     config.DefaultStep,
	}
}

// Attach sets the drawing area the face moves in. The face does not own it.
func (f *Face) Attach(b Bounds) { f.bounds = b }

// Attached reports whether the face has a drawing area. A detached face
// never touches any edge.
func (f *Face) Attached() bool { return f.bounds != nil }

func (f *Face) X() int      { return f.x }
func (f *Face) Y() int      { return f.y }
func (f *Face) Width() int  { return f.width }
func (f *Face) Height() int { return f.height }
func (f *Face) Dx() int     { return f.dx }
func (f *Face) Dy() int     { return f.dy }

// SetDx sets the horizontal step. Positive moves right.
func (f *Face) SetDx(v int) { f.dx = v }

// SetDy sets the vertical step. Positive moves down, negative moves up.
func (f *Face) SetDy(v int) { f.dy = v }

func (f *Face) SetVelocity(dx, dy int) {
	f.dx, f.dy = dx, dy
}

func (f *Face) ReflectHorizontal() { f.dx = -f.dx }

func (f *Face) ReflectVertical() { f.dy = -f.dy }

func (f *Face) ReflectBoth() {
	f.dx = -f.dx
	f.dy = -f.dy
}

// Move translates the face by its step without looking at the edges.
func (f *Face) Move() {
	f.x += f.dx
	f.y += f.dy
}

// MoveWithBounce reflects each velocity component whose axis is touching an
// edge, judged from the current position, and then moves. It reports whether
// anything was reflected.
func (f *Face) MoveWithBounce() bool {
	bounced := false
	if f.TouchesLeftEdge() || f.TouchesRightEdge() {
		f.ReflectHorizontal()
		bounced = true
	}
	if f.TouchesTopEdge() || f.TouchesBottomEdge() {
		f.ReflectVertical()
		bounced = true
	}
	f.Move()
	return bounced
}

func (f *Face) TouchesLeftEdge() bool {
	if f.bounds == nil {
		return false
	}
	return f.x < 0
}

func (f *Face) TouchesRightEdge() bool {
	if f.bounds == nil {
		return false
	}
	return f.x+f.width > f.bounds.Width()
}

func (f *Face) TouchesTopEdge() bool {
	if f.bounds == nil {
		return false
	}
	return f.y < 0
}

// TouchesBottomEdge is inclusive: resting exactly on the bottom edge counts,
// unlike the right edge.
func (f *Face) TouchesBottomEdge() bool {
	if f.bounds == nil {
		return false
	}
	return f.y+f.height >= f.bounds.Height()
}

func (f *Face) TouchesAnyEdge() bool {
	return f.TouchesRightEdge() || f.TouchesLeftEdge() || f.TouchesTopEdge() || f.TouchesBottomEdge()
}

// State returns a copy of the face geometry.
func (f *Face) State() State {
	return State{
		X:      f.x,
		Y:      f.y,
		Width:  f.width,
		Height: f.height,
		Dx:     f.dx,
		Dy:     f.dy,
	}
}

// Draw paints the face on s.
func (f *Face) Draw(s render.Surface) { f.State().Draw(s) }

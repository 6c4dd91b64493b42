// Package scene holds the faces shown in a window and publishes immutable
// frames of them for the redraw path.
package scene

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/iburimskiy/face-animation/internal/face"
	"github.com/iburimskiy/face-animation/internal/render"
)

// Frame is a published picture of the scene. It is never modified after
// publication, so hosts may draw it from any goroutine.
type Frame struct {
	Seq    uint64
	Width  int
	Height int
	Faces  []face.State
}

// Draw paints the faces in insertion order.
func (fr *Frame) Draw(s render.Surface) {
	for _, st := range fr.Faces {
		st.Draw(s)
	}
}

// Canvas is the drawing area. Its size belongs to the host window and is
// changed only through SetSize; faces read it on every edge check.
type Canvas struct {
	mu    sync.Mutex
	faces []*face.Face

	width  atomic.Int64
	height atomic.Int64

	frame   atomic.Pointer[Frame]
	seq     uint64 // guarded by mu
	redraws chan struct{}

	// Decorate, when set, may annotate each snapshot before it is published.
	// It runs on the goroutine calling RequestRedraw.
	Decorate func(f *face.Face, st *face.State)
}

func New(width, height int) *Canvas {
	c := &Canvas{redraws: make(chan struct{}, 1)}
	c.SetSize(width, height)
	return c
}

func (c *Canvas) Width() int  { return int(c.width.Load()) }
func (c *Canvas) Height() int { return int(c.height.Load()) }

// SetSize records the current size of the host drawing area.
func (c *Canvas) SetSize(width, height int) {
	c.width.Store(int64(width))
	c.height.Store(int64(height))
}

// AddFace appends f unless this exact face is already present, attaches it
// to the canvas and requests a redraw. It reports whether f was added.
func (c *Canvas) AddFace(f *face.Face) bool {
	c.mu.Lock()
	if slices.Contains(c.faces, f) {
		c.mu.Unlock()
		return false
	}
	c.faces = append(c.faces, f)
	f.Attach(c)
	c.mu.Unlock()

	c.RequestRedraw()
	return true
}

// Faces returns the faces in insertion order.
func (c *Canvas) Faces() []*face.Face {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.faces)
}

func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.faces)
}

// RequestRedraw publishes a new frame and wakes any host waiting on Redraws.
// Only the goroutine that moves the faces may call it once animation runs.
func (c *Canvas) RequestRedraw() {
	c.mu.Lock()
	c.seq++
	fr := &Frame{
		Seq:    c.seq,
		Width:  c.Width(),
		Height: c.Height(),
		Faces:  make([]face.State, 0, len(c.faces)),
	}
	for _, f := range c.faces {
		st := f.State()
		if c.Decorate != nil {
			c.Decorate(f, &st)
		}
		fr.Faces = append(fr.Faces, st)
	}
	c.mu.Unlock()

	c.frame.Store(fr)
	select {
	case c.redraws <- struct{}{}:
	default:
	}
}

// Redraws delivers a signal after each publication. Signals coalesce.
func (c *Canvas) Redraws() <-chan struct{} { return c.redraws }

// Frame returns the latest published frame, or nil if none was published.
func (c *Canvas) Frame() *Frame { return c.frame.Load() }

// OnRedraw draws the latest published frame on s.
func (c *Canvas) OnRedraw(s render.Surface) {
	if fr := c.frame.Load(); fr != nil {
		fr.Draw(s)
	}
}

// Package anim drives the faces of a canvas frame by frame.
package anim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/face"
	"github.com/iburimskiy/face-animation/internal/scene"
)

// Policy selects how a face reacts to an edge within one frame.
type Policy uint8

const (
	// PolicyReflectBoth reverses both velocity components when any edge is
	// touched, then moves.
	PolicyReflectBoth Policy = iota
	// PolicyPerAxis reverses only the component of the touched axis, judged
	// before moving (Face.MoveWithBounce).
	PolicyPerAxis
)

func (p Policy) String() string {
	switch p {
	case PolicyReflectBoth:
		return config.PolicyBoth
	case PolicyPerAxis:
		return config.PolicyAxis
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// ParsePolicy maps a configuration name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case config.PolicyBoth:
		return PolicyReflectBoth, nil
	case config.PolicyAxis:
		return PolicyPerAxis, nil
	}
	return 0, fmt.Errorf("%w: %q", config.ErrUnknownPolicy, name)
}

type Options struct {
	Delay       time.Duration
	Policy      Policy
	FlashFrames int

	// OnBounce is called from the stepping goroutine for every face that
	// reflected during a frame.
	OnBounce func(f *face.Face)
}

// Loop moves the faces of one canvas. Step and Run must be called from a
// single goroutine; the other methods are safe from any goroutine.
type Loop struct {
	canvas *scene.Canvas
	opts   Options
	flash  *flashes

	pendingMu sync.Mutex
	pending   []*face.Face

	paused atomic.Bool
	frames atomic.Uint64
}

// NewLoop installs the loop's snapshot hook on c.
func NewLoop(c *scene.Canvas, opts Options) *Loop {
	l := &Loop{
		canvas: c,
		opts:   opts,
		flash:  newFlashes(opts.FlashFrames),
	}
	c.Decorate = l.flash.decorate
	return l
}

// Add queues f to be added to the canvas at the start of the next frame, so
// faces only ever change hands on the stepping goroutine.
func (l *Loop) Add(f *face.Face) {
	l.pendingMu.Lock()
	l.pending = append(l.pending, f)
	l.pendingMu.Unlock()
}

func (l *Loop) SetPaused(p bool) { l.paused.Store(p) }
func (l *Loop) Paused() bool     { return l.paused.Load() }

// Frames returns the number of frames stepped so far.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

func (l *Loop) Delay() time.Duration { return l.opts.Delay }

// Step advances every face by one frame and publishes the result.
func (l *Loop) Step() {
	l.drainPending()

	if !l.Paused() {
		l.flash.advance()
		for _, f := range l.canvas.Faces() {
			if l.stepFace(f) {
				l.flash.start(f)
				Logger().Debug("bounce", "x", f.X(), "y", f.Y(), "dx", f.Dx(), "dy", f.Dy())
				if l.opts.OnBounce != nil {
					l.opts.OnBounce(f)
				}
			}
		}
		l.frames.Add(1)
	}

	l.canvas.RequestRedraw()
}

func (l *Loop) stepFace(f *face.Face) (bounced bool) {
	switch l.opts.Policy {
	case PolicyPerAxis:
		return f.MoveWithBounce()
	default:
		if f.TouchesAnyEdge() {
			f.ReflectBoth()
			bounced = true
		}
		f.Move()
		return bounced
	}
}

func (l *Loop) drainPending() {
	l.pendingMu.Lock()
	pending := l.pending
	l.pending = nil
	l.pendingMu.Unlock()

	for _, f := range pending {
		l.canvas.AddFace(f)
	}
}

// Run steps and pauses until ctx is done, then returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	Logger().Info("animation started",
		"faces", l.canvas.Len(), "delay", l.opts.Delay, "policy", l.opts.Policy)
	for {
		if err := ctx.Err(); err != nil {
			Logger().Info("animation stopped", "frames", l.Frames())
			return err
		}
		l.Step()
		Pause(ctx, l.opts.Delay)
	}
}

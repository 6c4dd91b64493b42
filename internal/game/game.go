// Package game hosts the animation in an ebiten window.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/face-animation/internal/anim"
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/face"
	"github.com/iburimskiy/face-animation/internal/scene"
)

// Game draws whatever the loop last published. It never touches the faces
// themselves: stepping happens on the loop's goroutine.
type Game struct {
	canvas  *scene.Canvas
	loop    *anim.Loop
	surface *screenSurface
	started time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	showHUD bool
	lastErr error
	done    <-chan struct{}
}

func New(c *scene.Canvas, loop *anim.Loop, showHUD bool) *Game {
	return &Game{
		canvas:  c,
		loop:    loop,
		surface: &screenSurface{},
		started: time.Now(),
		prevKey: map[ebiten.Key]bool{},
		showHUD: showHUD,
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.loop.SetPaused(!g.loop.Paused())
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openSceneDialog(); err != nil {
			g.lastErr = err
			anim.Logger().Warn("open scene", "err", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.Background)

	g.surface.dst = screen
	g.canvas.OnRedraw(g.surface)

	if g.showHUD {
		status := statusLine(g.loop.Frames(), g.canvas.Len(), g.loop.Paused(), time.Since(g.started), g.lastErr)
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout reports the window's drawing area to the canvas, so faces bounce
// off the current window edges.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) openSceneDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Scene File"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadScene(filename)
}

// loadScene queues the faces of a scene file onto the running animation.
func (g *Game) loadScene(path string) error {
	sc, err := config.ReadScene(path)
	if err != nil {
		return err
	}
	faces := face.AllFromConfig(sc.Faces)
	for _, f := range faces {
		g.loop.Add(f)
	}
	anim.Logger().Info("scene loaded", "file", path, "faces", len(faces))
	g.lastErr = nil
	return nil
}

// Run opens the window and blocks until it is closed, a quit key is pressed
// or ctx is done. Closing the window is a normal exit.
func Run(ctx context.Context, g *Game, width, height int) error {
	g.done = ctx.Done()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

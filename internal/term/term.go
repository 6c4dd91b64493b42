// Package term shows the animation in a terminal. Each frame is rasterized
// off-screen and every character cell shows two stacked pixels using the
// upper half block glyph.
package term

import (
	"context"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/face-animation/internal/anim"
	"github.com/iburimskiy/face-animation/internal/config"
	"github.com/iburimskiy/face-animation/internal/render"
	"github.com/iburimskiy/face-animation/internal/scene"
)

const upperHalf = '▀'

type Host struct {
	screen tcell.Screen
	canvas *scene.Canvas
	raster *render.Raster
}

// Open initialises the terminal screen.
func Open(c *scene.Canvas) (*Host, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return newHost(s, c), nil
}

func newHost(s tcell.Screen, c *scene.Canvas) *Host {
	s.HideCursor()
	s.Clear()
	return &Host{screen: s, canvas: c}
}

// Run redraws on every published frame until ctx is done. Esc, q and Ctrl-C
// call cancel. The screen is restored before Run returns.
func (h *Host) Run(ctx context.Context, cancel context.CancelFunc) error {
	defer h.close()

	go h.pollEvents(cancel)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.canvas.Redraws():
			if fr := h.canvas.Frame(); fr != nil {
				h.draw(fr)
			}
		}
	}
}

func (h *Host) pollEvents(cancel context.CancelFunc) {
	for {
		ev := h.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return // screen finalized
		case *tcell.EventResize:
			h.screen.Sync()
		case *tcell.EventKey:
			if quitKey(ev) {
				anim.Logger().Info("quit requested from terminal")
				cancel()
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (h *Host) draw(fr *scene.Frame) {
	if h.raster == nil || h.raster.Width() != fr.Width || h.raster.Height() != fr.Height {
		if h.raster != nil {
			_ = h.raster.Close()
		}
		h.raster = render.NewRaster(fr.Width, fr.Height)
	}
	h.raster.Clear(config.Background)
	fr.Draw(h.raster)

	cols, rows := h.screen.Size()
	paint(h.screen, h.raster.Image(), cols, rows)
	h.screen.Show()
}

// paint maps img onto a cols×rows cell grid, two pixel rows per cell.
func paint(s tcell.Screen, img image.Image, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	for cy := 0; cy < rows; cy++ {
		top := b.Min.Y + (2*cy)*b.Dy()/(2*rows)
		bottom := b.Min.Y + (2*cy+1)*b.Dy()/(2*rows)
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*b.Dx()/cols
			st := tcell.StyleDefault.
				Foreground(cellColor(img, x, top)).
				Background(cellColor(img, x, bottom))
			s.SetContent(cx, cy, upperHalf, nil, st)
		}
	}
}

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (h *Host) close() {
	h.screen.Fini()
	if h.raster != nil {
		_ = h.raster.Close()
	}
}

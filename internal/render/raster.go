package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Raster is a software Surface backed by a gg context. The first failed
// fill or stroke is kept and reported by EncodePNG.
type Raster struct {
	dc  *gg.Context
	err error
}

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &Raster{dc: dc}
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Clear fills the whole raster with c.
func (r *Raster) Clear(c color.Color) {
	r.err = nil
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *Raster) FillOval(x, y, w, h int, c color.Color) {
	rx, ry := float64(w)/2, float64(h)/2
	r.dc.SetColor(c)
	r.dc.DrawEllipse(float64(x)+rx, float64(y)+ry, rx, ry)
	r.keep(r.dc.Fill())
}

func (r *Raster) DrawOval(x, y, w, h int, c color.Color) {
	rx, ry := float64(w)/2, float64(h)/2
	r.dc.SetColor(c)
	r.dc.DrawEllipse(float64(x)+rx+0.5, float64(y)+ry+0.5, rx, ry)
	r.keep(r.dc.Stroke())
}

func (r *Raster) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	r.keep(r.dc.Stroke())
}

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("raster: %w", err)
	}
}

// Err returns the first drawing error since the last Clear.
func (r *Raster) Err() error { return r.err }

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

func (r *Raster) Close() error { return r.dc.Close() }

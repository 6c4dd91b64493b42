package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1×1 white source image for DrawTriangles, cut from the
// middle of a 3×3 image so edge sampling stays white.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// screenSurface draws faces on an ebiten image.
type screenSurface struct {
	dst *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func (s *screenSurface) FillOval(x, y, w, h int, c color.Color) {
	p := ovalPath(float32(x), float32(y), float32(w), float32(h))
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(c)
}

func (s *screenSurface) DrawOval(x, y, w, h int, c color.Color) {
	p := ovalPath(float32(x)+0.5, float32(y)+0.5, float32(w), float32(h))
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{Width: 1})
	s.drawTriangles(c)
}

func (s *screenSurface) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	vector.StrokeLine(s.dst, float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, 1, c, true)
}

func (s *screenSurface) drawTriangles(c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.dst.DrawTriangles(s.vs, s.is, white(), op)
}

// ovalPath approximates the ellipse inscribed in the box with four cubic
// Bézier arcs.
func ovalPath(x, y, w, h float32) *vector.Path {
	const k = 0.5522847498307936
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox, oy := rx*k, ry*k

	var p vector.Path
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
	return &p
}

package render

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"
)

type styleMap map[string]string

// String renders the style in key order so output is stable.
func (sm styleMap) String() string {
	keys := make([]string, 0, len(sm))
	for k := range sm {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k + ":" + sm[k])
	}
	return b.String()
}

func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/255)
}

// SVG is a Surface writing an SVG document. Call End once drawing is done.
type SVG struct {
	s *svg.SVG
}

// NewSVG starts a width×height document on w, filled with bg.
func NewSVG(w io.Writer, width, height int, bg color.Color) *SVG {
	s := svg.New(w)
	s.Start(width, height)
	s.Rect(0, 0, width, height, styleMap{
		"fill":   cssColor(bg),
		"stroke": "none",
	}.String())
	return &SVG{s: s}
}

func (v *SVG) FillOval(x, y, w, h int, c color.Color) {
	v.s.Ellipse(x+w/2, y+h/2, w/2, h/2, styleMap{
		"fill":   cssColor(c),
		"stroke": "none",
	}.String())
}

func (v *SVG) DrawOval(x, y, w, h int, c color.Color) {
	v.s.Ellipse(x+w/2, y+h/2, w/2, h/2, styleMap{
		"fill":   "none",
		"stroke": cssColor(c),
	}.String())
}

func (v *SVG) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	v.s.Line(x1, y1, x2, y2, styleMap{
		"stroke": cssColor(c),
	}.String())
}

// End closes the document.
func (v *SVG) End() { v.s.End() }

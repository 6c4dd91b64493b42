package render

import "image/color"

type OpKind uint8

const (
	OpFillOval OpKind = iota
	OpDrawOval
	OpDrawLine
)

func (k OpKind) String() string {
	switch k {
	case OpFillOval:
		return "FillOval"
	case OpDrawOval:
		return "DrawOval"
	case OpDrawLine:
		return "DrawLine"
	}
	return "Unknown"
}

// Op is one recorded primitive. For ovals X2/Y2 hold width/height.
type Op struct {
	Kind   OpKind
	X, Y   int
	X2, Y2 int
	Color  color.Color
}

// Recorder is a Surface that keeps the primitives it receives, in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillOval(x, y, w, h int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillOval, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) DrawOval(x, y, w, h int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawOval, X: x, Y: y, X2: w, Y2: h, Color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 int, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

// Reset drops the recorded primitives.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

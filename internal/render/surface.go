// Package render defines the drawing surface faces are painted on and the
// off-screen backends used for export and terminal output.
package render

import "image/color"

// Surface is a 2D drawing target. Coordinates are integer pixels with the
// origin at the top-left corner, y growing downward. Ovals are given by their
// bounding box.
type Surface interface {
	FillOval(x, y, w, h int, c color.Color)
	DrawOval(x, y, w, h int, c color.Color)
	DrawLine(x1, y1, x2, y2 int, c color.Color)
}

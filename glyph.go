package circles

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Point is a 2D coordinate on the icon canvas.
type Point struct {
	X, Y float64
}

// CheckmarkPolygon returns the three vertices of the simplified checkmark
// glyph scaled to a square box of the given size anchored at (x, y): the
// stroke descends from 20%,50% of the box to the 40%,70% elbow, then rises
// to 80%,30%.
func CheckmarkPolygon(x, y, size float64) []Point {
	return []Point{
		{X: x + 0.2*size, Y: y + 0.5*size},
		{X: x + 0.4*size, Y: y + 0.7*size},
		{X: x + 0.8*size, Y: y + 0.3*size},
	}
}

// FillPolygon rasterizes the polygon described by pts onto dst as an
// anti-aliased flat colored shape. Fewer than three points cannot enclose
// an area, in which case dst is left untouched.
func FillPolygon(dst *image.NRGBA, pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()

	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

package circles

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/geraldsadya/Circles/utils"
)

// kappa is the control point distance approximating a quarter circle arc
// with a single cubic Bezier segment.
const kappa = 0.5522847498307936

// RoundedMask returns a square single channel mask holding 255 inside a
// rounded rectangle of the given corner radius and 0 outside of it, with the
// edge anti-aliasing coming from the rasterizer coverage. The radius is
// clamped to the [0, size/2] range.
func RoundedMask(size, radius int) (*image.Alpha, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	radius = utils.Min(utils.Max(radius, 0), size/2)

	var z vector.Rasterizer
	z.Reset(size, size)
	z.DrawOp = draw.Src
	roundedRectPath(&z, float32(size), float32(radius))

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, nil
}

// FillEllipse draws an anti-aliased ellipse inscribed in the r rectangle
// onto dst, filled with a flat color.
func FillEllipse(dst *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	if r.Empty() {
		return
	}
	b := dst.Bounds()

	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	ellipsePath(&z, r)
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// ellipseMask returns a single channel mask covering the ellipse inscribed
// in the full square of the given size.
func ellipseMask(size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))

	var z vector.Rasterizer
	z.Reset(size, size)
	z.DrawOp = draw.Src
	ellipsePath(&z, mask.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// roundedRectPath appends the outline of a rounded rectangle spanning the
// full square viewport, tracing each corner with a quarter arc cubic.
func roundedRectPath(z *vector.Rasterizer, size, radius float32) {
	k := radius * float32(kappa)

	z.MoveTo(radius, 0)
	z.LineTo(size-radius, 0)
	z.CubeTo(size-radius+k, 0, size, radius-k, size, radius)
	z.LineTo(size, size-radius)
	z.CubeTo(size, size-radius+k, size-radius+k, size, size-radius, size)
	z.LineTo(radius, size)
	z.CubeTo(radius-k, size, 0, size-radius+k, 0, size-radius)
	z.LineTo(0, radius)
	z.CubeTo(0, radius-k, radius-k, 0, radius, 0)
	z.ClosePath()
}

// ellipsePath appends the outline of the ellipse inscribed in r, built from
// four quarter arc cubics.
func ellipsePath(z *vector.Rasterizer, r image.Rectangle) {
	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	kx := rx * float32(kappa)
	ky := ry * float32(kappa)

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

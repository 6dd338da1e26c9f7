// Package imop implements the image compositing operators the icon layers
// are assembled with. All the operations work on non alpha-premultiplied
// images and write their results into the destination image, leaving the
// source image and the mask untouched.
package imop

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrOutOfBounds is returned when the composited region does not fit
	// inside the destination image.
	ErrOutOfBounds = errors.New("imop: composited region exceeds the destination bounds")
	// ErrSizeMismatch is returned when the source image and the mask do not
	// share the same dimensions.
	ErrSizeMismatch = errors.New("imop: the source image and the mask must have the same size")
)

// SourceOver composites the source image over the destination image with the
// source top-left corner placed at pos, applying the src-over alpha
// composition formula on straight alpha values.
func SourceOver(dst, src *image.NRGBA, pos image.Point) error {
	if err := checkBounds(dst, src.Bounds().Size(), pos); err != nil {
		return err
	}

	var rn, gn, bn, an float64

	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	sp := src.Bounds().Min

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := src.NRGBAAt(sp.X+x, sp.Y+y)
			b := dst.NRGBAAt(pos.X+x, pos.Y+y)

			rsn := float64(s.R) / 255
			gsn := float64(s.G) / 255
			bsn := float64(s.B) / 255
			asn := float64(s.A) / 255

			rbn := float64(b.R) / 255
			gbn := float64(b.G) / 255
			bbn := float64(b.B) / 255
			abn := float64(b.A) / 255

			// applying the alpha composition formula
			an = asn + abn*(1-asn)
			if an == 0 {
				dst.SetNRGBA(pos.X+x, pos.Y+y, color.NRGBA{})
				continue
			}
			rn = (rsn*asn + rbn*abn*(1-asn)) / an
			gn = (gsn*asn + gbn*abn*(1-asn)) / an
			bn = (bsn*asn + bbn*abn*(1-asn)) / an

			dst.SetNRGBA(pos.X+x, pos.Y+y, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
	return nil
}

// PasteMask blends the source image into the destination image with the
// source top-left corner placed at pos, weighted per pixel by the mask
// value: 0 keeps the destination, 255 takes the source and the values in
// between interpolate all four channels proportionally. The source and the
// mask must share the same dimensions.
func PasteMask(dst, src *image.NRGBA, mask *image.Alpha, pos image.Point) error {
	if src.Bounds().Size() != mask.Bounds().Size() {
		return ErrSizeMismatch
	}
	if err := checkBounds(dst, src.Bounds().Size(), pos); err != nil {
		return err
	}

	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	sp := src.Bounds().Min
	mp := mask.Bounds().Min

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			m := float64(mask.AlphaAt(mp.X+x, mp.Y+y).A) / 255
			if m == 0 {
				continue
			}
			s := src.NRGBAAt(sp.X+x, sp.Y+y)
			b := dst.NRGBAAt(pos.X+x, pos.Y+y)

			dst.SetNRGBA(pos.X+x, pos.Y+y, color.NRGBA{
				R: lerp(b.R, s.R, m),
				G: lerp(b.G, s.G, m),
				B: lerp(b.B, s.B, m),
				A: lerp(b.A, s.A, m),
			})
		}
	}
	return nil
}

// lerp interpolates linearly between two channel values.
func lerp(b, s uint8, m float64) uint8 {
	return uint8(float64(b)*(1-m) + float64(s)*m + 0.5)
}

// checkBounds verifies that a region of the given size placed at pos lies
// entirely inside the destination image.
func checkBounds(dst *image.NRGBA, size image.Point, pos image.Point) error {
	region := image.Rectangle{Min: pos, Max: pos.Add(size)}
	if !region.In(dst.Bounds()) {
		return ErrOutOfBounds
	}
	return nil
}

package circles

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Gradient renders a square vertical gradient interpolating linearly
// between the start and the end color. Every row is a single color, row 0
// equals the start color and the interpolated channel values are truncated
// to integers. The returned image is fully opaque: the alpha channel of the
// gradient colors is not part of the interpolation.
func Gradient(size int, start, end color.NRGBA) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	img := imaging.New(size, size, color.NRGBA{})
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		row := color.NRGBA{
			R: uint8(float64(start.R)*(1-ratio) + float64(end.R)*ratio),
			G: uint8(float64(start.G)*(1-ratio) + float64(end.G)*ratio),
			B: uint8(float64(start.B)*(1-ratio) + float64(end.B)*ratio),
			A: 0xff,
		}

		i := img.PixOffset(0, y)
		for x := 0; x < size; x++ {
			img.Pix[i+0] = row.R
			img.Pix[i+1] = row.G
			img.Pix[i+2] = row.B
			img.Pix[i+3] = row.A
			i += 4
		}
	}
	return img, nil
}

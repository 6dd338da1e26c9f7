package circles

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestRoundedMask_Coverage(t *testing.T) {
	for _, size := range []int{16, 60, 101} {
		radius := int(math.Round(float64(size) * 0.22))

		mask, err := RoundedMask(size, radius)
		assert.NoError(t, err)
		assert.Equal(t, size, mask.Bounds().Dx())
		assert.Equal(t, size, mask.Bounds().Dy())

		// The interior and the straight edge midpoints are fully covered,
		// the four corner pixels fall outside of the rounding arcs.
		assert.EqualValues(t, 255, mask.AlphaAt(size/2, size/2).A)
		assert.EqualValues(t, 255, mask.AlphaAt(size/2, 0).A)
		assert.EqualValues(t, 255, mask.AlphaAt(0, size/2).A)

		assert.EqualValues(t, 0, mask.AlphaAt(0, 0).A)
		assert.EqualValues(t, 0, mask.AlphaAt(size-1, 0).A)
		assert.EqualValues(t, 0, mask.AlphaAt(0, size-1).A)
		assert.EqualValues(t, 0, mask.AlphaAt(size-1, size-1).A)
	}
}

func TestRoundedMask_ZeroRadius(t *testing.T) {
	mask, err := RoundedMask(20, 0)
	assert.NoError(t, err)

	assert.EqualValues(t, 255, mask.AlphaAt(0, 0).A)
	assert.EqualValues(t, 255, mask.AlphaAt(19, 0).A)
	assert.EqualValues(t, 255, mask.AlphaAt(0, 19).A)
	assert.EqualValues(t, 255, mask.AlphaAt(19, 19).A)
	assert.EqualValues(t, 255, mask.AlphaAt(10, 10).A)
}

func TestRoundedMask_RadiusClamped(t *testing.T) {
	// Radii beyond half the square collapse onto the capsule shape.
	big, err := RoundedMask(40, 1000)
	assert.NoError(t, err)
	capsule, err := RoundedMask(40, 20)
	assert.NoError(t, err)
	assert.Equal(t, capsule.Pix, big.Pix)

	// Negative radii behave like a plain square.
	neg, err := RoundedMask(40, -3)
	assert.NoError(t, err)
	square, err := RoundedMask(40, 0)
	assert.NoError(t, err)
	assert.Equal(t, square.Pix, neg.Pix)
}

func TestRoundedMask_InvalidSize(t *testing.T) {
	_, err := RoundedMask(0, 4)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = RoundedMask(-16, 4)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFillEllipse_Coverage(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	img := imaging.New(40, 40, color.NRGBA{})

	FillEllipse(img, image.Rect(4, 4, 36, 36), red)

	assert.Equal(t, red, img.NRGBAAt(20, 20))
	assert.EqualValues(t, 0, img.NRGBAAt(1, 1).A)
	assert.EqualValues(t, 0, img.NRGBAAt(38, 38).A)
	assert.EqualValues(t, 0, img.NRGBAAt(38, 1).A)
}

func TestFillEllipse_EmptyRect(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{})
	ref := imaging.New(8, 8, color.NRGBA{})

	FillEllipse(img, image.Rect(5, 5, 5, 5), color.NRGBA{R: 255, A: 255})
	assert.Equal(t, ref.Pix, img.Pix)
}

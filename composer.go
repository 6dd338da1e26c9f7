package circles

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/geraldsadya/Circles/imop"
)

// ErrInvalidSize is returned when a renderer is asked for a non-positive
// pixel size.
var ErrInvalidSize = errors.New("the pixel size must be a positive number")

// The proportions of the icon layers relative to the rendered pixel size.
const (
	cornerRatio      = 0.22
	mainCircleRatio  = 0.6
	innerCircleRatio = 0.4
	badgeCircleRatio = 0.3
	checkmarkRatio   = 0.25

	// depthCueAlpha is the opacity of the gradient disc layered over the
	// main circle.
	depthCueAlpha = 25
)

// Composer assembles the finished icon image out of its layers. The zero
// value is not usable, a palette must be provided.
type Composer struct {
	Palette Palette
}

// Compose renders the complete icon at the requested pixel size. It is a
// pure function of the pixel size and the palette: two invocations with the
// same size produce byte-identical images.
//
// The layers are stacked bottom-up: the rounded-square badge filled with the
// primary to secondary blue gradient, the white main circle, a low opacity
// blue to purple gradient disc, the white checkmark badge circle, the
// checkmark glyph, the glass highlight and finally the drop shadow underneath
// everything. The composition is centered onto the larger shadow canvas and
// cropped back, so the returned image is always exactly pixelSize by
// pixelSize with the shadow bleeding into its border pixels.
func (c *Composer) Compose(pixelSize int) (*image.NRGBA, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}

	gradient, err := Gradient(pixelSize, c.Palette.PrimaryBlue, c.Palette.SecondaryBlue)
	if err != nil {
		return nil, err
	}

	radius := int(math.Round(float64(pixelSize) * cornerRatio))
	mask, err := RoundedMask(pixelSize, radius)
	if err != nil {
		return nil, err
	}

	img := imaging.New(pixelSize, pixelSize, color.NRGBA{})
	if err := imop.PasteMask(img, gradient, mask, image.Point{}); err != nil {
		return nil, fmt.Errorf("masking the badge gradient: %w", err)
	}

	c.fillCenteredCircle(img, mainCircleRatio, c.Palette.BackgroundWhite)

	if err := c.drawDepthCue(img); err != nil {
		return nil, err
	}

	c.fillCenteredCircle(img, badgeCircleRatio, c.Palette.BackgroundWhite)

	if d := int(float64(pixelSize) * checkmarkRatio); d > 0 {
		pos := float64((pixelSize - d) / 2)
		FillPolygon(img, CheckmarkPolygon(pos, pos, float64(d)), c.Palette.PrimaryBlue)
	}

	if err := imop.SourceOver(img, c.HighlightOverlay(pixelSize), image.Point{}); err != nil {
		return nil, fmt.Errorf("compositing the highlight: %w", err)
	}

	shadow := c.ShadowLayer(pixelSize)
	offset := (shadow.Bounds().Dx() - pixelSize) / 2
	if err := imop.SourceOver(shadow, img, image.Pt(offset, offset)); err != nil {
		return nil, fmt.Errorf("compositing onto the shadow: %w", err)
	}
	return imaging.CropCenter(shadow, pixelSize, pixelSize), nil
}

// fillCenteredCircle draws an opaque circle centered on the canvas, with the
// diameter derived from the canvas size and the given ratio.
func (c *Composer) fillCenteredCircle(img *image.NRGBA, ratio float64, col color.NRGBA) {
	size := img.Bounds().Dx()
	d := int(float64(size) * ratio)
	if d <= 0 {
		return
	}
	pos := (size - d) / 2
	FillEllipse(img, image.Rect(pos, pos, pos+d, pos+d), col)
}

// drawDepthCue layers a faint blue to purple gradient disc over the center of
// the emblem. The disc is the inner gradient clipped to a circle and pasted
// at depthCueAlpha opacity; sizes small enough for the disc diameter to
// truncate to zero skip the layer entirely.
func (c *Composer) drawDepthCue(img *image.NRGBA) error {
	size := img.Bounds().Dx()
	d := int(float64(size) * innerCircleRatio)
	if d <= 0 {
		return nil
	}

	inner, err := Gradient(d, c.Palette.PrimaryBlue, c.Palette.AccentPurple)
	if err != nil {
		return err
	}

	// Scale the circle coverage down to the layer opacity.
	mask := ellipseMask(d)
	for i, v := range mask.Pix {
		mask.Pix[i] = uint8(uint16(v) * depthCueAlpha / 255)
	}

	pos := (size - d) / 2
	if err := imop.PasteMask(img, inner, mask, image.Pt(pos, pos)); err != nil {
		return fmt.Errorf("compositing the depth cue: %w", err)
	}
	return nil
}

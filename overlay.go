package circles

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	// highlightScale is the diameter of the glass highlight relative to the
	// icon size, inset by highlightInset from the top-left corner.
	highlightScale = 0.8
	highlightInset = 0.1

	// shadowScale sizes the shadow canvas relative to the icon so the blur
	// falloff has room to bleed.
	shadowScale = 1.1

	// shadowSigma is the Gaussian blur sigma applied to the shadow shape.
	// The reference design keeps it at 2 px at every size instead of scaling
	// it with the icon, so the shadow is crisp at 1024 px and prominent on
	// the small tiers.
	shadowSigma = 2
)

// HighlightOverlay returns a transparent square layer of the given size with
// the translucent white ellipse inscribed in the inner 80% of the square,
// meant to be composited over the finished artwork as a glass reflection.
func (c *Composer) HighlightOverlay(size int) *image.NRGBA {
	overlay := imaging.New(size, size, color.NRGBA{})

	d := int(float64(size) * highlightScale)
	offset := int(float64(size) * highlightInset)
	FillEllipse(overlay, image.Rect(offset, offset, offset+d, offset+d), c.Palette.HighlightWhite)
	return overlay
}

// ShadowLayer returns the blurred drop shadow the icon sits on. The canvas
// is 110% of the requested size per side, filled with a low opacity black
// ellipse and softened with a fixed radius Gaussian blur, so the returned
// image is larger than size.
func (c *Composer) ShadowLayer(size int) *image.NRGBA {
	d := int(float64(size) * shadowScale)
	shadow := imaging.New(d, d, color.NRGBA{})

	FillEllipse(shadow, shadow.Bounds(), c.Palette.ShadowGray)
	return imaging.Blur(shadow, shadowSigma)
}

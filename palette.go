package circles

import "image/color"

// Palette is the fixed color table every renderer draws from. It is
// constructed once and passed around explicitly, never mutated.
type Palette struct {
	PrimaryBlue     color.NRGBA
	SecondaryBlue   color.NRGBA
	AccentPurple    color.NRGBA
	BackgroundWhite color.NRGBA
	ShadowGray      color.NRGBA
	HighlightWhite  color.NRGBA
}

// DefaultPalette returns the stock Circles icon colors.
func DefaultPalette() Palette {
	return Palette{
		PrimaryBlue:     color.NRGBA{R: 0, G: 122, B: 255, A: 255},
		SecondaryBlue:   color.NRGBA{R: 0, G: 89, B: 204, A: 255},
		AccentPurple:    color.NRGBA{R: 128, G: 0, B: 255, A: 255},
		BackgroundWhite: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		ShadowGray:      color.NRGBA{R: 0, G: 0, B: 0, A: 25},
		HighlightWhite:  color.NRGBA{R: 255, G: 255, B: 255, A: 77},
	}
}

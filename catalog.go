package circles

import (
	"fmt"
	"math"
)

// storeIconSize is the logical size of the marketing icon required by the
// App Store listing.
const storeIconSize = 1024

// IconSize is one entry of the icon catalog: a logical point size plus the
// device scale factor it is rendered at.
type IconSize struct {
	Width  float64
	Height float64
	Scale  int
}

// PixelSize returns the actual rendered size in pixels.
func (s IconSize) PixelSize() int {
	return int(math.Round(s.Width * float64(s.Scale)))
}

// Square reports whether the entry describes a square icon. Non-square
// entries are listed in the catalog but never composed.
func (s IconSize) Square() bool {
	return s.Width == s.Height
}

// Filename derives the output file name for the entry. The logical width is
// truncated to an integer and scale factors above one carry an @Nx suffix.
// Every store size entry collapses onto the same name regardless of its
// scale, which deduplicates the store icon variants on purpose.
func (s IconSize) Filename() string {
	if s.Width == storeIconSize {
		return fmt.Sprintf("AppIcon-%d.png", storeIconSize)
	}
	if s.Scale > 1 {
		return fmt.Sprintf("AppIcon-%d@%dx.png", int(s.Width), s.Scale)
	}
	return fmt.Sprintf("AppIcon-%d.png", int(s.Width))
}

// IconSizes returns the fixed catalog of sizes the application target
// requires: the notification, settings, spotlight and application tiers at
// their device scale factors, the iPad app tiers and the store icon.
func IconSizes() []IconSize {
	return []IconSize{
		{Width: 20, Height: 20, Scale: 1},
		{Width: 20, Height: 20, Scale: 2},
		{Width: 20, Height: 20, Scale: 3},
		{Width: 29, Height: 29, Scale: 1},
		{Width: 29, Height: 29, Scale: 2},
		{Width: 29, Height: 29, Scale: 3},
		{Width: 40, Height: 40, Scale: 1},
		{Width: 40, Height: 40, Scale: 2},
		{Width: 40, Height: 40, Scale: 3},
		{Width: 60, Height: 60, Scale: 1},
		{Width: 60, Height: 60, Scale: 2},
		{Width: 60, Height: 60, Scale: 3},
		{Width: 76, Height: 76, Scale: 1},
		{Width: 76, Height: 76, Scale: 2},
		{Width: 83.5, Height: 83.5, Scale: 2},
		{Width: storeIconSize, Height: storeIconSize, Scale: 1},
	}
}

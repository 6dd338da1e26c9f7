package circles

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func encodeAs(t *testing.T, path string, format imaging.Format, width, height int) {
	t.Helper()

	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()

	img := imaging.New(width, height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	assert.NoError(t, imaging.Encode(f, img, format))
}

func TestValidator_ComposedIcon(t *testing.T) {
	c := &Composer{Palette: DefaultPalette()}
	img, err := c.Compose(64)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "AppIcon-64.png")
	assert.NoError(t, imaging.Save(img, path))

	status := ValidateIcon(path)
	assert.True(t, status.Valid)
	assert.Equal(t, "Icon is valid", status.Reason)
}

func TestValidator_RejectsNonSquare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon-40.png")
	encodeAs(t, path, imaging.PNG, 64, 32)

	status := ValidateIcon(path)
	assert.False(t, status.Valid)
	assert.Equal(t, "Icon must be square", status.Reason)
}

func TestValidator_RejectsUndersizedStoreIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon-1024.png")
	encodeAs(t, path, imaging.PNG, 512, 512)

	status := ValidateIcon(path)
	assert.False(t, status.Valid)
	assert.Equal(t, "App Store icon must be at least 1024x1024", status.Reason)
}

func TestValidator_RejectsForeignFormats(t *testing.T) {
	// A PNG extension gives no guarantee about the bytes behind it.
	for _, format := range []imaging.Format{imaging.JPEG, imaging.BMP} {
		path := filepath.Join(t.TempDir(), "AppIcon-20.png")
		encodeAs(t, path, format, 32, 32)

		status := ValidateIcon(path)
		assert.False(t, status.Valid)
		assert.Equal(t, "Icon must be PNG format", status.Reason)
	}
}

func TestValidator_ReportsUndecodableFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "AppIcon-20.png")
	assert.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	status := ValidateIcon(path)
	assert.False(t, status.Valid)
	assert.Contains(t, status.Reason, "Error validating icon")
}

func TestValidator_ReportsMissingFiles(t *testing.T) {
	status := ValidateIcon(filepath.Join(t.TempDir(), "AppIcon-20.png"))
	assert.False(t, status.Valid)
	assert.Contains(t, status.Reason, "Error validating icon")
}

func TestValidator_StoreRuleReadsBaseNameOnly(t *testing.T) {
	// A "1024" somewhere in the directory path must not trip the store
	// size rule for a regular catalog entry.
	dir := filepath.Join(t.TempDir(), "batch-1024")
	assert.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, "AppIcon-20.png")
	encodeAs(t, path, imaging.PNG, 20, 20)

	status := ValidateIcon(path)
	assert.True(t, status.Valid)
	assert.Equal(t, "Icon is valid", status.Reason)
}

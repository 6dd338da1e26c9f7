package circles

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// The non-PNG decoders are registered so that a foreign file is
	// identified and reported as the wrong format instead of failing to
	// decode at all.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ValidationResult is the structured outcome of validating one icon file.
// A failed validation is a regular negative result, never an error.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ValidateIcon checks a produced icon file against the packaging rules: the
// image must be square, a file named after the store size must actually
// measure at least 1024 pixels and the encoded format must be PNG. Read and
// decode failures are reported as an invalid result carrying the underlying
// error message.
func ValidateIcon(path string) ValidationResult {
	f, err := os.Open(path)
	if err != nil {
		return ValidationResult{Reason: fmt.Sprintf("Error validating icon: %v", err)}
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ValidationResult{Reason: fmt.Sprintf("Error validating icon: %v", err)}
	}

	if cfg.Width != cfg.Height {
		return ValidationResult{Reason: "Icon must be square"}
	}
	if strings.Contains(filepath.Base(path), "1024") && cfg.Width < storeIconSize {
		return ValidationResult{Reason: "App Store icon must be at least 1024x1024"}
	}
	if format != "png" {
		return ValidationResult{Reason: "Icon must be PNG format"}
	}
	return ValidationResult{Valid: true, Reason: "Icon is valid"}
}

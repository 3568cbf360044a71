// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxImageSize is the largest accepted card image in bytes (10 MiB).
const MaxImageSize = 10 * 1024 * 1024

// imageExtensions lists the accepted upload formats.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidationError reports a rejected card image. The upload is recoverable:
// the caller surfaces the message and the user retries with another file.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid card image: " + e.Reason
}

// ValidateImage checks the upload constraints for a card image: PNG, JPG or
// JPEG extension and at most MaxImageSize bytes.
func ValidateImage(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return &ValidationError{Reason: "please upload a PNG, JPG, or JPEG image"}
	}
	if size > MaxImageSize {
		return &ValidationError{Reason: fmt.Sprintf("file size must be less than %d MB", MaxImageSize/(1024*1024))}
	}
	return nil
}

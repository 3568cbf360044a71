// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr is the recognition port: one card image in, recognized text
// and a confidence score out. Engines report coarse progress through an
// optional callback with monotonically non-decreasing percentages.
package ocr

import (
	"context"
	"fmt"

	"github.com/pdiddy/cardscan/pkg/types"
)

// Result is the outcome of recognizing one card image.
type Result struct {
	// Text is the recognized text, line breaks preserved.
	Text string

	// Confidence is the engine's quality estimate in [0,100].
	Confidence int
}

// ProgressFunc receives recognition progress percentages in [0,100].
type ProgressFunc func(percent int)

// Engine is the recognition provider contract. Implementations must not
// invoke progress after Recognize returns. A nil progress is allowed.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte, lang types.Language, progress ProgressFunc) (Result, error)
}

// RecognitionError reports an engine failure. Recognition failures are
// recoverable: the caller resets progress to 0 and the user retries.
type RecognitionError struct {
	Engine string
	Err    error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed (%s engine): %v", e.Engine, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// New constructs the engine selected by cfg.
func New(cfg types.OCRConfig) (Engine, error) {
	switch cfg.Engine {
	case types.EngineTesseract, "":
		return NewTesseract(), nil
	case types.EngineRemote:
		return NewRemote(cfg)
	}
	return nil, fmt.Errorf("unsupported ocr engine %q: use tesseract or remote", cfg.Engine)
}

func report(progress ProgressFunc, percent int) {
	if progress != nil {
		progress(percent)
	}
}

func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

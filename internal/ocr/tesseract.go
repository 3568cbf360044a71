// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"math"

	"github.com/otiai10/gosseract/v2"

	"github.com/pdiddy/cardscan/pkg/types"
)

// Tesseract recognizes card images with a local Tesseract installation
// through the gosseract client. Each call uses a fresh client.
type Tesseract struct {
	clientFactory func() *gosseract.Client
}

// NewTesseract constructs the local Tesseract engine.
func NewTesseract() *Tesseract {
	return &Tesseract{clientFactory: gosseract.NewClient}
}

func (t *Tesseract) Name() string { return "tesseract" }

// Recognize performs OCR on a single card image. The language maps 1:1 to
// a Tesseract trained-data name. Progress is coarse: 0 when recognition
// starts, 100 when it completes.
func (t *Tesseract) Recognize(ctx context.Context, image []byte, lang types.Language, progress ProgressFunc) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	report(progress, 0)

	c := t.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return Result{}, &RecognitionError{Engine: t.Name(), Err: fmt.Errorf("set image: %w", err)}
	}
	if err := c.SetLanguage(string(types.ParseLanguage(string(lang)))); err != nil {
		return Result{}, &RecognitionError{Engine: t.Name(), Err: fmt.Errorf("set language: %w", err)}
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, &RecognitionError{Engine: t.Name(), Err: fmt.Errorf("recognize text: %w", err)}
	}

	report(progress, 100)

	return Result{
		Text:       text,
		Confidence: wordConfidence(c),
	}, nil
}

// wordConfidence averages per-word confidences from Tesseract's bounding
// boxes into a 0-100 score. No words means zero confidence.
func wordConfidence(c *gosseract.Client) int {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return clampConfidence(int(math.Round(sum / float64(len(boxes)))))
}

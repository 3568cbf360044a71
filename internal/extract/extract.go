// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract builds a structured ContactRecord from raw OCR text.
package extract

import (
	"strings"

	"github.com/pdiddy/cardscan/internal/classify"
	"github.com/pdiddy/cardscan/internal/match"
	"github.com/pdiddy/cardscan/pkg/types"
)

// Extract assembles a ContactRecord from raw recognized text and the
// recognizer's confidence score. It runs each field matcher over the full
// text once, classifies the text's lines, and carries the original inputs
// through. Extraction is deterministic and never fails; in the worst case
// every optional field is absent.
func Extract(rawText string, confidence int) types.ContactRecord {
	rec := types.ContactRecord{
		Confidence: clampConfidence(confidence),
		RawText:    rawText,
	}

	if email, ok := match.Email(rawText); ok {
		rec.Email = email
	}
	if phone, ok := match.Phone(rawText); ok {
		rec.Phone = phone
	}
	if site, ok := match.Website(rawText); ok {
		rec.Website = site
	}

	fields := classify.Classify(SplitLines(rawText))
	rec.Name = fields.Name
	rec.Organization = fields.Organization
	rec.Position = fields.Position
	rec.Address = fields.Address

	return rec
}

// SplitLines splits raw text on line breaks into trimmed, non-empty lines,
// preserving document order.
func SplitLines(rawText string) []string {
	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

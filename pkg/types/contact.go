// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model and configuration shared across the
// cardscan stages.
package types

import "time"

// ContactRecord is the structured result of extracting a business card.
// Optional fields hold the empty string when the field was not detected;
// a present field is always non-empty after trimming.
type ContactRecord struct {
	// Name is the contact's display name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Email is the first email-shaped substring found in the raw text.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// Phone is the first phone-shaped substring found in the raw text.
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`

	// Organization is the company or institution line.
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`

	// Position is the job title line.
	Position string `json:"position,omitempty" yaml:"position,omitempty"`

	// Address is the street-address line, or the longest plausible line.
	Address string `json:"address,omitempty" yaml:"address,omitempty"`

	// Website is the first non-email URL-shaped substring.
	Website string `json:"website,omitempty" yaml:"website,omitempty"`

	// Confidence is the OCR quality estimate in [0,100]. Imported records
	// carry 100 by convention since no recognition took place.
	Confidence int `json:"confidence" yaml:"confidence"`

	// RawText is the full recognized text the record was extracted from.
	// Empty for imported records.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// HistoryItem is one stored scan or imported contact with provenance.
type HistoryItem struct {
	// ID is a unique identifier, stable for the item's lifetime.
	ID string `json:"id" yaml:"id"`

	// Image is the encoded source image. Empty for imported items.
	Image string `json:"image" yaml:"image"`

	// Contact is the extracted or imported record. Owned by this item;
	// edits replace the whole value.
	Contact ContactRecord `json:"contact_info" yaml:"contact_info"`

	// Language is the recognizer language the scan used.
	Language Language `json:"language" yaml:"language"`

	// Timestamp is the creation instant.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Filename is a display label, not a filesystem path.
	Filename string `json:"filename" yaml:"filename"`
}

// Language identifies a recognizer language.
type Language string

const (
	LangEnglish Language = "eng"
	LangHindi   Language = "hin"
	LangMarathi Language = "mar"
)

// ParseLanguage maps a code to a supported Language. Unrecognized codes
// fall back to English.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangEnglish, LangHindi, LangMarathi:
		return Language(code)
	}
	return LangEnglish
}

// DisplayName returns the human-readable name for the language code.
func (l Language) DisplayName() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangHindi:
		return "Hindi"
	case LangMarathi:
		return "Marathi"
	}
	return string(l)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"reflect"
	"testing"
)

const sampleCard = `Jane Doe
Acme Corp
Senior Engineer
www.acme.com
jane@acme.com
+1 (415) 555-2671
123 Main St, Springfield, IL 62704`

func TestExtractFullCard(t *testing.T) {
	rec := Extract(sampleCard, 87)

	if rec.Name != "Jane Doe" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Organization != "Acme Corp" {
		t.Errorf("Organization = %q", rec.Organization)
	}
	if rec.Position != "Senior Engineer" {
		t.Errorf("Position = %q", rec.Position)
	}
	if rec.Email != "jane@acme.com" {
		t.Errorf("Email = %q", rec.Email)
	}
	if rec.Phone == "" {
		t.Error("Phone not detected")
	}
	if rec.Website != "www.acme.com" {
		t.Errorf("Website = %q", rec.Website)
	}
	if rec.Address != "123 Main St, Springfield, IL 62704" {
		t.Errorf("Address = %q", rec.Address)
	}
	if rec.Confidence != 87 {
		t.Errorf("Confidence = %d", rec.Confidence)
	}
	if rec.RawText != sampleCard {
		t.Error("RawText was not carried through")
	}
}

func TestExtractDeterministic(t *testing.T) {
	a := Extract(sampleCard, 60)
	b := Extract(sampleCard, 60)
	if !reflect.DeepEqual(a, b) {
		t.Error("same input produced different records")
	}
}

func TestExtractEmptyText(t *testing.T) {
	rec := Extract("", 42)
	if rec.Name != "" || rec.Email != "" || rec.Phone != "" || rec.Address != "" {
		t.Errorf("expected all fields absent, got %+v", rec)
	}
	if rec.Confidence != 42 {
		t.Errorf("Confidence = %d", rec.Confidence)
	}
}

func TestExtractClampsConfidence(t *testing.T) {
	if got := Extract("x", -5).Confidence; got != 0 {
		t.Errorf("Confidence = %d, want 0", got)
	}
	if got := Extract("x", 140).Confidence; got != 100 {
		t.Errorf("Confidence = %d, want 100", got)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"blank lines dropped", "a\n\n  \nb", []string{"a", "b"}},
		{"lines trimmed", "  Jane Doe \t\nAcme\r\n", []string{"Jane Doe", "Acme"}},
		{"empty input", "", nil},
		{"order preserved", "c\nb\na", []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"png ok", "card.png", 1024, false},
		{"jpeg ok", "card.JPEG", 1024, false},
		{"gif rejected", "card.gif", 1024, true},
		{"no extension", "card", 1024, true},
		{"too large", "card.jpg", MaxImageSize + 1, true},
		{"at limit", "card.jpg", MaxImageSize, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.filename, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImage(%q, %d) error = %v, wantErr %v", tt.filename, tt.size, err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("error is %T, want *ValidationError", err)
				}
			}
		})
	}
}

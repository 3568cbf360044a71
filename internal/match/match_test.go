// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{"embedded", "Contact: jane.doe@example.com today", "jane.doe@example.com", true},
		{"first wins", "a@x.com then b@y.org", "a@x.com", true},
		{"plus and dots", "e: first.last+tag@mail.example.co", "first.last+tag@mail.example.co", true},
		{"no match", "no email here", "", false},
		{"bare at sign", "meet @ noon", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.text)
			if ok != tt.wantHit || got != tt.want {
				t.Errorf("Email(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantHit)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantHit bool
	}{
		{"international", "+1 (415) 555-2671", true},
		{"bare ten digits", "5551234567", true},
		{"dotted", "call 415.555.2671 now", true},
		{"hyphenated", "415-555-2671", true},
		{"too short", "555-26", false},
		{"words only", "call me maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Phone(tt.text)
			if ok != tt.wantHit {
				t.Errorf("Phone(%q) = %q, %v; want hit=%v", tt.text, got, ok, tt.wantHit)
			}
		})
	}
}

func TestWebsite(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantHit bool
	}{
		{"scheme and path", "see https://acme.example/about for info", "https://acme.example/about", true},
		{"www prefix", "visit www.acme.com", "www.acme.com", true},
		{"bare domain", "acme.io", "acme.io", true},
		{"email domain kept", "write to jane@acme.com", "acme.com", true},
		{"email then site", "jane@acme.com or acme.com/jobs", "acme.com", true},
		{"plain words", "nothing to see", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Website(tt.text)
			if ok != tt.wantHit || got != tt.want {
				t.Errorf("Website(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantHit)
			}
		})
	}
}

func TestStreetAddress(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"123 Main St, Springfield, IL 62704", true},
		{"400110", true}, // 6-digit postal code
		{"Acme Corp", false},
		{"Senior Engineer", false},
	}
	for _, tt := range tests {
		if got := StreetAddress(tt.line); got != tt.want {
			t.Errorf("StreetAddress(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLineShapes(t *testing.T) {
	if !EmailLine("jane@acme.com") {
		t.Error("EmailLine should accept a bare address")
	}
	if EmailLine("mail jane@acme.com today") {
		t.Error("EmailLine should reject embedded addresses")
	}
	if !PhoneLine("+1 (415) 555-2671") {
		t.Error("PhoneLine should accept a bare number")
	}
	if PhoneLine("Jane Doe") {
		t.Error("PhoneLine should reject names")
	}
	if !WebsiteLine("www.acme.com") {
		t.Error("WebsiteLine should accept a bare URL")
	}
	if WebsiteLine("Acme Corp") {
		t.Error("WebsiteLine should reject plain words")
	}
}

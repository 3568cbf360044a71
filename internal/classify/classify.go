// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns unstructured text lines to contact fields using
// positional and exclusion heuristics.
//
// The heuristics are best-effort: false positives and negatives are expected
// and surfaced to the user through the record's confidence value rather than
// hidden. No linguistic parsing is attempted.
package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/cardscan/internal/match"
)

// Fields holds the candidate line assignments for a business card. Empty
// string means no qualifying line was found.
type Fields struct {
	Name         string
	Organization string
	Position     string
	Address      string
}

// organizationWindow bounds how far past the top of the card the
// organization scan looks. Business cards print the company near the top.
const organizationWindow = 5

// Line length bounds shared by the name and organization scans, in
// characters, not bytes: Devanagari card text runs three bytes per
// character.
const (
	minLineLen = 2
	maxLineLen = 50
)

func lineLen(line string) int {
	return utf8.RuneCountInString(line)
}

// Classify runs a single greedy first-fit pass over lines and picks at most
// one candidate line for each of name, organization, position and address.
// Lines must be trimmed and non-empty, in original document order.
//
// Each field's scan runs independently; a line that qualifies for two
// fields can be assigned to both. Lines are not marked as consumed.
func Classify(lines []string) Fields {
	var f Fields

	f.Name = pickName(lines)
	f.Organization = pickOrganization(lines, f.Name)
	f.Position = pickPosition(lines, f.Name, f.Organization)
	f.Address = pickAddress(lines, f)

	return f
}

// pickName selects the first line that is not fully email-, phone- or
// URL-shaped and whose length is strictly between the bounds.
func pickName(lines []string) string {
	for _, line := range lines {
		if lineShaped(line) {
			continue
		}
		if n := lineLen(line); n > minLineLen && n < maxLineLen {
			return line
		}
	}
	return ""
}

// pickOrganization scans the up-to-four lines after the first, applying the
// same shape constraints as the name scan, and skipping the name itself.
func pickOrganization(lines []string, name string) string {
	limit := len(lines)
	if limit > organizationWindow {
		limit = organizationWindow
	}
	for i := 1; i < limit; i++ {
		line := lines[i]
		if lineShaped(line) || line == name {
			continue
		}
		if n := lineLen(line); n > minLineLen && n < maxLineLen {
			return line
		}
	}
	return ""
}

// pickPosition takes the line directly after the first line containing the
// name. Titles are printed beneath the name often enough for this to hold.
// When the organization line sits between the name and the title, the scan
// steps over it once.
func pickPosition(lines []string, name, organization string) string {
	if name == "" {
		return ""
	}
	nameIndex := -1
	for i, line := range lines {
		if strings.Contains(line, name) {
			nameIndex = i
			break
		}
	}
	if nameIndex < 0 || nameIndex+1 >= len(lines) {
		return ""
	}
	candidate := lines[nameIndex+1]
	if candidate == organization && nameIndex+2 < len(lines) {
		candidate = lines[nameIndex+2]
	}
	if lineShaped(candidate) {
		return ""
	}
	if candidate == organization || lineLen(candidate) >= maxLineLen {
		return ""
	}
	return candidate
}

// pickAddress first tries every line against the street-address shape.
// Failing that it falls back to the single longest line over 15 characters
// that is not shaped and not already assigned; the strict > comparison keeps
// the earliest line on ties.
func pickAddress(lines []string, f Fields) string {
	for _, line := range lines {
		if match.StreetAddress(line) {
			return line
		}
	}

	longest := ""
	longestLen := 0
	for _, line := range lines {
		if lineShaped(line) {
			continue
		}
		if line == f.Name || line == f.Organization || line == f.Position {
			continue
		}
		if n := lineLen(line); n > longestLen && n > 15 {
			longest = line
			longestLen = n
		}
	}
	return longest
}

// lineShaped reports whether the whole line looks like an email, phone
// number or URL, which excludes it from the free-text field scans.
func lineShaped(line string) bool {
	return match.EmailLine(line) || match.PhoneLine(line) || match.WebsiteLine(line)
}

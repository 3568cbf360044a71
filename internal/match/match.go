// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match detects contact field shapes in free text.
//
// All matchers are pure functions over a string with no shared scan state.
// Absence of a match is a normal, silent outcome: the string result is empty
// and the boolean false.
package match

import (
	"regexp"
	"strings"
)

const (
	emailPattern = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`
	phonePattern = `(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10}`
	urlPattern   = `(?i)(?:https?://)?(?:www\.)?[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+(?:/[^\s]*)?`
)

var (
	emailRe = regexp.MustCompile(`\b` + emailPattern + `\b`)
	phoneRe = regexp.MustCompile(phonePattern)
	urlRe   = regexp.MustCompile(urlPattern)

	// Street-address shape: leading house number, words, an optional
	// two-letter region and a 5-digit code, or a bare 6-digit postal code
	// for locales that use them.
	addressRe = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+,?\s*[A-Za-z\s]+,?\s*[A-Za-z]{2}\s*\d{5}|\d{6}`)

	// Anchored variants for whole-line shape tests.
	emailLineRe = regexp.MustCompile(`^(?:` + emailPattern + `)$`)
	phoneLineRe = regexp.MustCompile(`^(?:` + phonePattern + `)$`)
	urlLineRe   = regexp.MustCompile(`^(?:` + urlPattern + `)$`)
)

// Email returns the first email-shaped substring of text in document order.
func Email(text string) (string, bool) {
	m := emailRe.FindString(text)
	return m, m != ""
}

// Phone returns the first phone-shaped substring of text. Accepted shapes:
// optional country code, optional parenthesized area code, separators of
// space, dot or hyphen, 3+3+4 digit groups, or a bare 10-digit run. No
// regional validation is attempted.
func Phone(text string) (string, bool) {
	m := phoneRe.FindString(text)
	return m, m != ""
}

// Website returns the first URL-shaped substring of text that is not part of
// an email address. Candidates containing "@" are discarded so an email's
// domain is not reclassified as a website.
func Website(text string) (string, bool) {
	for _, m := range urlRe.FindAllString(text, -1) {
		if !strings.Contains(m, "@") {
			return m, true
		}
	}
	return "", false
}

// StreetAddress reports whether line contains a street-address shape or a
// bare 6-digit postal code.
func StreetAddress(line string) bool {
	return addressRe.MatchString(line)
}

// EmailLine reports whether the whole line is email-shaped.
func EmailLine(line string) bool { return emailLineRe.MatchString(line) }

// PhoneLine reports whether the whole line is phone-shaped.
func PhoneLine(line string) bool { return phoneLineRe.MatchString(line) }

// WebsiteLine reports whether the whole line is URL-shaped.
func WebsiteLine(line string) bool { return urlLineRe.MatchString(line) }

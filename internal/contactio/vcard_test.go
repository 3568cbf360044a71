// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contactio

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/cardscan/pkg/types"
)

func TestExportVCardFullRecord(t *testing.T) {
	r := types.ContactRecord{
		Name:         "Jane Doe",
		Organization: "Acme Corp",
		Position:     "Senior Engineer",
		Email:        "jane@acme.com",
		Phone:        "+1 (415) 555-2671",
		Website:      "www.acme.com",
		Address:      "123 Main St, Springfield, IL 62704",
		Confidence:   87,
	}

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Jane Doe",
		"ORG:Acme Corp",
		"TITLE:Senior Engineer",
		"EMAIL:jane@acme.com",
		"TEL:+1 (415) 555-2671",
		"URL:www.acme.com",
		"ADR:;;123 Main St, Springfield, IL 62704;;;",
		"END:VCARD",
	}, "\n")

	if got := ExportVCard(r); got != want {
		t.Errorf("vCard mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportVCardOmitsAbsentFields(t *testing.T) {
	r := types.ContactRecord{Name: "Bob", Confidence: 100}
	got := ExportVCard(r)

	want := "BEGIN:VCARD\nVERSION:3.0\nFN:Bob\nEND:VCARD"
	if got != want {
		t.Errorf("vCard = %q, want %q", got, want)
	}
}

func TestExportVCardEmptyRecord(t *testing.T) {
	got := ExportVCard(types.ContactRecord{Confidence: 100})
	if got != "BEGIN:VCARD\nVERSION:3.0\nEND:VCARD" {
		t.Errorf("vCard = %q", got)
	}
}

func TestExportFilenames(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got := CSVFilename(now); got != "contacts_1700000000000.csv" {
		t.Errorf("CSVFilename = %q", got)
	}
	if got := VCardFilename(now); got != "contact_1700000000000.vcf" {
		t.Errorf("VCardFilename = %q", got)
	}
}

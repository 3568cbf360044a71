// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contactio

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/cardscan/pkg/types"
)

// ExportVCard renders a single record as a version 3.0 vCard. Only present
// fields are emitted, one property per line, in the fixed order FN, ORG,
// TITLE, EMAIL, TEL, URL, ADR. The free-text address goes into the street
// component of ADR.
func ExportVCard(r types.ContactRecord) string {
	lines := []string{"BEGIN:VCARD", "VERSION:3.0"}

	properties := []struct {
		value  string
		format string
	}{
		{r.Name, "FN:%s"},
		{r.Organization, "ORG:%s"},
		{r.Position, "TITLE:%s"},
		{r.Email, "EMAIL:%s"},
		{r.Phone, "TEL:%s"},
		{r.Website, "URL:%s"},
		{r.Address, "ADR:;;%s;;;"},
	}
	for _, p := range properties {
		if p.value != "" {
			lines = append(lines, fmt.Sprintf(p.format, p.value))
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

// VCardFilename returns the timestamped download name for a single-contact
// export, e.g. contact_1700000000000.vcf.
func VCardFilename(now time.Time) string {
	return fmt.Sprintf("contact_%d.vcf", now.UnixMilli())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contactio converts contact records to and from interchange
// formats: CSV for bulk import/export and vCard for single records.
//
// The CSV dialect is fixed: every exported field is double-quoted with
// embedded quotes doubled, and the importer splits data lines with a
// quote-toggling scanner so commas inside quoted fields survive. The
// importer deliberately skips rows whose field count does not match the
// header instead of failing the whole file.
package contactio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/cardscan/pkg/types"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"Name", "Organization", "Position", "Email", "Phone", "Website", "Address"}

// identityColumns are the header tokens at least one of which an imported
// file must carry.
var identityColumns = []string{"name", "email", "phone"}

// ExportCSV renders records as CSV text with the fixed header. Absent fields
// export as empty quoted strings.
func ExportCSV(records []types.ContactRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, r := range records {
		b.WriteByte('\n')
		fields := []string{r.Name, r.Organization, r.Position, r.Email, r.Phone, r.Website, r.Address}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}

	return b.String()
}

// ImportCSV parses CSV text into contact records. It requires a header row
// plus at least one data row, and at least one of the identity columns
// (name, email, phone) in the header. Rows with a mismatched field count or
// no usable data are skipped silently. Imported records carry confidence
// 100 and empty raw text since no recognition took place.
//
// Returns *FormatError, *EmptyResultError or *TooManyRecordsError.
func ImportCSV(content string) ([]types.ContactRecord, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil, &FormatError{Reason: "file must contain a header row and at least one data row"}
	}

	header := splitHeader(lines[0])
	if !hasIdentityColumn(header) {
		return nil, &FormatError{Reason: "file must contain at least one of these columns: Name, Email, Phone"}
	}

	var records []types.ContactRecord
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitLine(line)
		if len(values) != len(header) {
			continue
		}

		rec, ok := rowRecord(header, values)
		if ok {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, &EmptyResultError{}
	}
	if len(records) > MaxImportRecords {
		return nil, &TooManyRecordsError{Count: len(records)}
	}

	return records, nil
}

// ImportFile reads and imports a contact file, enforcing the .csv extension.
// Spreadsheet extensions get a distinct hint from other unsupported formats.
func ImportFile(path string) ([]types.ContactRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
	case ".xlsx", ".xls":
		return nil, &FormatError{Reason: "spreadsheet formats are not supported, save the file as CSV"}
	default:
		return nil, &FormatError{Reason: "unsupported file format, use a .csv file"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contact file: %w", err)
	}
	return ImportCSV(string(data))
}

// splitHeader splits the header row on commas. The header split is naive by
// contract: quoted header cells are not supported.
func splitHeader(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

// splitLine splits one data line into fields, tracking quote state. A
// doubled quote inside a quoted field emits one literal quote; a comma
// inside quotes is not a separator; a lone quote toggles quote mode.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	fields = append(fields, current.String())
	return fields
}

// rowRecord maps one data row onto a ContactRecord using the header's
// column names. It reports false when no mapped field held a non-empty
// value after trimming.
func rowRecord(header, values []string) (types.ContactRecord, bool) {
	rec := types.ContactRecord{Confidence: 100, RawText: ""}
	hasData := false

	for i, column := range header {
		value := strings.TrimSpace(values[i])
		if value == "" {
			continue
		}

		switch column {
		case "name", "full name", "fullname":
			rec.Name = value
		case "organization", "company":
			rec.Organization = value
		case "position", "title", "job title":
			rec.Position = value
		case "email":
			rec.Email = value
		case "phone", "telephone", "mobile":
			rec.Phone = value
		case "website", "url":
			rec.Website = value
		case "address":
			rec.Address = value
		default:
			continue
		}
		hasData = true
	}

	return rec, hasData
}

func hasIdentityColumn(header []string) bool {
	for _, want := range identityColumns {
		for _, col := range header {
			if col == want {
				return true
			}
		}
	}
	return false
}

// CSVFilename returns the timestamped download name for a multi-contact
// export, e.g. contacts_1700000000000.csv.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("contacts_%d.csv", now.UnixMilli())
}

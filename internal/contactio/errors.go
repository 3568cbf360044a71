// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contactio

import "fmt"

// MaxImportRecords is the hard cap on contacts accepted from one import.
const MaxImportRecords = 50

// FormatError reports CSV input whose structure cannot be imported: too few
// lines, no recognizable identity column, or an unsupported file extension.
// The import aborts with no partial state change.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid contact file: " + e.Reason
}

// EmptyResultError reports an import that produced zero usable records after
// processing every row.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "no valid contacts found in the file"
}

// TooManyRecordsError reports an import exceeding MaxImportRecords. Count is
// the number of records the file actually produced.
type TooManyRecordsError struct {
	Count int
}

func (e *TooManyRecordsError) Error() string {
	return fmt.Sprintf("file contains %d contacts, maximum allowed is %d", e.Count, MaxImportRecords)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/pdiddy/cardscan/internal/history"
	"github.com/pdiddy/cardscan/pkg/types"
)

// openStore builds the history store from config. The returned closer
// releases the snapshot backend; it is a no-op for the file backend.
func openStore() (*history.Store, func() error, error) {
	snap, err := history.NewSnapshotter(historyConfig())
	if err != nil {
		return nil, nil, err
	}
	closeSnap := func() error { return nil }
	if c, ok := snap.(io.Closer); ok {
		closeSnap = c.Close
	}

	store, err := history.NewStore(snap)
	if err != nil {
		closeSnap()
		return nil, nil, err
	}
	return store, closeSnap, nil
}

// findItem locates a history item by ID.
func findItem(store *history.Store, id string) (types.HistoryItem, bool) {
	for _, item := range store.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return types.HistoryItem{}, false
}

// confidenceLabel buckets a confidence score for display.
func confidenceLabel(confidence int) string {
	switch {
	case confidence >= 80:
		return "High"
	case confidence >= 60:
		return "Medium"
	}
	return "Low"
}

// printRecord writes a contact record as labeled lines. Absent fields
// show as "(not detected)".
func printRecord(w io.Writer, r types.ContactRecord) {
	fields := []struct {
		label string
		value string
	}{
		{"Name", r.Name},
		{"Organization", r.Organization},
		{"Position", r.Position},
		{"Email", r.Email},
		{"Phone", r.Phone},
		{"Website", r.Website},
		{"Address", r.Address},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = "(not detected)"
		}
		fmt.Fprintf(w, "%-13s %s\n", f.label+":", value)
	}
	fmt.Fprintf(w, "%-13s %s (%d%%)\n", "Confidence:", confidenceLabel(r.Confidence), r.Confidence)
}

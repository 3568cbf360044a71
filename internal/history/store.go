// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/cardscan/pkg/types"
)

// Store is the owned, ordered collection of history items, newest first.
// Every mutation writes through to the snapshot before returning, so the
// persisted state always reflects the most recent successful operation.
// A failed write leaves the in-memory collection unchanged.
//
// All operations hold the store's lock, so a Store is safe to share across
// goroutines even though the CLI drives it from a single flow.
type Store struct {
	mu         sync.Mutex
	items      []types.HistoryItem
	selectedID string
	snap       Snapshotter
}

// NewStore restores the collection from the snapshot and returns the store.
func NewStore(snap Snapshotter) (*Store, error) {
	items, err := snap.Load()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return &Store{items: items, snap: snap}, nil
}

// Add creates a new item for a scanned card and prepends it.
func (s *Store) Add(record types.ContactRecord, image string, lang types.Language) (types.HistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	item := types.HistoryItem{
		ID:        uuid.New().String(),
		Image:     image,
		Contact:   record,
		Language:  lang,
		Timestamp: now,
		Filename:  fmt.Sprintf("business-card-%d.jpg", now.UnixMilli()),
	}

	next := prepend(s.items, item)
	if err := s.snap.Save(next); err != nil {
		return types.HistoryItem{}, err
	}
	s.items = next
	return item, nil
}

// BulkAdd creates one item per imported record and prepends them as a
// contiguous block preserving input order. Imported items carry no image,
// confidence 100 and empty raw text. The first imported item becomes the
// active selection.
func (s *Store) BulkAdd(records []types.ContactRecord, lang types.Language) ([]types.HistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	block := make([]types.HistoryItem, len(records))
	for i, rec := range records {
		rec.Confidence = 100
		rec.RawText = ""
		block[i] = types.HistoryItem{
			ID:        uuid.New().String(),
			Image:     "",
			Contact:   rec,
			Language:  lang,
			Timestamp: now,
			Filename:  fmt.Sprintf("imported-contact-%d.csv", now.UnixMilli()),
		}
	}

	next := prepend(s.items, block...)
	if err := s.snap.Save(next); err != nil {
		return nil, err
	}
	s.items = next
	if len(block) > 0 {
		s.selectedID = block[0].ID
	}
	return block, nil
}

// Edit replaces the contact record of the item matching id. A missing id is
// a silent no-op reported through the boolean; the collection is unchanged.
func (s *Store) Edit(id string, record types.ContactRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]types.HistoryItem, len(s.items))
	copy(next, s.items)
	next[idx].Contact = record

	if err := s.snap.Save(next); err != nil {
		return false, err
	}
	s.items = next
	return true, nil
}

// Delete removes the item matching id. If the active selection referenced
// it, the selection is cleared. A missing id is a silent no-op.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	next := make([]types.HistoryItem, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.snap.Save(next); err != nil {
		return false, err
	}
	s.items = next
	if s.selectedID == id {
		s.selectedID = ""
	}
	return true, nil
}

// Select marks the item matching id as the active selection and returns it.
func (s *Store) Select(id string) (types.HistoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return types.HistoryItem{}, false
	}
	s.selectedID = id
	return s.items[idx], true
}

// Selected returns the active selection, if any.
func (s *Store) Selected() (types.HistoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(s.selectedID)
	if idx < 0 {
		return types.HistoryItem{}, false
	}
	return s.items[idx], true
}

// Items returns a copy of the collection in order, newest first.
func (s *Store) Items() []types.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.HistoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Contacts returns the contact records in collection order.
func (s *Store) Contacts() []types.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.ContactRecord, len(s.items))
	for i, item := range s.items {
		out[i] = item.Contact
	}
	return out
}

// index returns the position of id, or -1. Callers hold the lock.
func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func prepend(items []types.HistoryItem, block ...types.HistoryItem) []types.HistoryItem {
	next := make([]types.HistoryItem, 0, len(items)+len(block))
	next = append(next, block...)
	next = append(next, items...)
	return next
}

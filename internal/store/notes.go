package store

import (
	"fmt"
	"sync"
	"time"

	"supplierhub-backend/internal/models"
)

// NoteStore keeps free-text notes keyed by (user, supplier), last write wins.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]map[int]models.Note // user id -> supplier id -> note
}

func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[string]map[int]models.Note),
	}
}

// Set creates or replaces the note, preserving the original creation stamp
// when the note already exists.
func (st *NoteStore) Set(userID string, supplierID int, content string) models.Note {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.notes[userID] == nil {
		st.notes[userID] = make(map[int]models.Note)
	}

	now := time.Now()
	note := models.Note{
		UserID:     userID,
		SupplierID: supplierID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if existing, ok := st.notes[userID][supplierID]; ok {
		note.CreatedAt = existing.CreatedAt
	}
	st.notes[userID][supplierID] = note
	return note
}

func (st *NoteStore) Delete(userID string, supplierID int) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.notes[userID][supplierID]; !ok {
		return fmt.Errorf("%w: note for supplier %d", ErrNotFound, supplierID)
	}
	delete(st.notes[userID], supplierID)
	return nil
}

func (st *NoteStore) List(userID string) []models.Note {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]models.Note, 0, len(st.notes[userID]))
	for _, note := range st.notes[userID] {
		out = append(out, note)
	}
	return out
}

// RemoveSupplier drops every user's note for the supplier (delete cascade).
func (st *NoteStore) RemoveSupplier(supplierID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, userNotes := range st.notes {
		delete(userNotes, supplierID)
	}
}

package store

import (
	"fmt"
	"sync"
	"time"

	"supplierhub-backend/internal/models"
)

// SessionStore is the revocation registry for issued tokens. Entries expire
// after the configured TTL or when the user logs out, whichever comes first.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session // token id -> session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) TTL() time.Duration {
	return st.ttl
}

func (st *SessionStore) Create(tokenID, userID, email, name, provider string) models.Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	session := models.Session{
		UserID:    userID,
		Email:     email,
		Name:      name,
		Provider:  provider,
		LoginTime: now,
		ExpiresAt: now.Add(st.ttl),
	}
	st.sessions[tokenID] = session
	return session
}

// Get returns the live session for the token id. Expired entries are dropped
// lazily on access.
func (st *SessionStore) Get(tokenID string) (models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[tokenID]
	if !ok {
		return models.Session{}, fmt.Errorf("%w: session", ErrNotFound)
	}
	if time.Now().After(session.ExpiresAt) {
		delete(st.sessions, tokenID)
		return models.Session{}, fmt.Errorf("%w: session expired", ErrNotFound)
	}
	return session, nil
}

func (st *SessionStore) Delete(tokenID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[tokenID]; !ok {
		return fmt.Errorf("%w: session", ErrNotFound)
	}
	delete(st.sessions, tokenID)
	return nil
}

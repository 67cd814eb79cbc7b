package store

import (
	"log"

	"supplierhub-backend/internal/config"
)

// Package-level store handles, created once at process start. All state is
// volatile: a restart resets every collection.
var (
	Suppliers *SupplierStore
	Favorites *FavoriteStore
	Notes     *NoteStore
	Sessions  *SessionStore
)

func Init(cfg *config.Config) {
	Suppliers = NewSupplierStore()
	Favorites = NewFavoriteStore()
	Notes = NewNoteStore()
	Sessions = NewSessionStore(cfg.SessionTTL)

	log.Println("Stores initialized (in-memory, zero suppliers loaded)")
}

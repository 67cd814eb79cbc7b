package audit

import (
	"encoding/json"
	"sync"
	"time"

	"supplierhub-backend/internal/models"
)

// maxEntries bounds the in-memory trail; the oldest entries are dropped.
const maxEntries = 1000

type LogOptions struct {
	UserID      string
	EntityType  string
	EntityID    int
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

var (
	mu      sync.Mutex
	entries []models.AuditLog
	nextID  int
)

func WriteLog(opts LogOptions) {
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	nextID++
	entries = append(entries, models.AuditLog{
		ID:          nextID,
		UserID:      opts.UserID,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		CreatedAt:   time.Now(),
	})
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
}

// List returns the trail newest first.
func List() []models.AuditLog {
	mu.Lock()
	defer mu.Unlock()

	out := make([]models.AuditLog, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

// Reset clears the trail. Only used from tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
	nextID = 0
}

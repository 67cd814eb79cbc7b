package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionImport AuditAction = "import"
)

type AuditLog struct {
	ID          int         `json:"id"`
	UserID      string      `json:"user_id"`
	EntityType  string      `json:"entity_type"`
	EntityID    int         `json:"entity_id"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
	BeforeData  string      `json:"before_data"`
	AfterData   string      `json:"after_data"`
	CreatedAt   time.Time   `json:"created_at"`
}

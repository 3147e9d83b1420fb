// internal/models/audit.go
package models

import (
	"github.com/google/uuid"
)

// AuditLog records mutating requests (cart changes, checkout, catalog sync).
type AuditLog struct {
	BaseModel
	SessionID    string     `json:"session_id" gorm:"size:64;index"`
	Action       string     `json:"action" gorm:"size:100;not null;index"`
	ResourceType string     `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   *uuid.UUID `json:"resource_id" gorm:"type:uuid;index"`
	NewValues    JSONB      `json:"new_values" gorm:"type:jsonb"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"type:text"`
}

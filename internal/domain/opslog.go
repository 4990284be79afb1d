package domain

import (
	"time"

	"github.com/google/uuid"
)

// OpsLogEntry is a free-form operations note: an internal note, a
// production request from a customer or a business reminder.
type OpsLogEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	Kind      OpsLogKind
	CreatedAt time.Time
}

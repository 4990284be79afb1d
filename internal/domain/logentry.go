package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is the immutable record of one interpreted command.
type LogEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Content    string
	AIResponse string
	CreatedAt  time.Time
}

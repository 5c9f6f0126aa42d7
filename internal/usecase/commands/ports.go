package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type QuotaSnapshot struct {
	UserID       uuid.UUID
	Credits      int32
	LastRefillAt time.Time
}

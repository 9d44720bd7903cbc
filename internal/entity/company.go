package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a registered ledger identity for data transfer between layers.
type Company struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

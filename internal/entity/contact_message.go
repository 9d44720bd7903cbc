package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is one stored contact-form submission.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

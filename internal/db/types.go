package db

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a stored contact form submission
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Listing bounds for ListContactMessages
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// clampLimit keeps a requested page size within bounds
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

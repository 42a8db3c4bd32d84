package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered candidate.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

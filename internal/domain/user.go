package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Email is stored lowercased.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Name         string    `json:"name" db:"name"`                 // Given name
	Surname      string    `json:"surname" db:"surname"`           // Family name
	Email        string    `json:"email" db:"email"`               // Unique email, stored lowercased
	Phone        string    `json:"phone" db:"phone"`               // Phone number
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}

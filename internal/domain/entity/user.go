// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder in the fincast system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	RiskAlerts   bool // Send an email when an assessment lands in the critical band
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		RiskAlerts:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

// User is the aggregate root for the identity domain.
// Created only by registration; this service never updates or deletes it.
type User struct {
	ID              uuid.UUID
	Email           valueobject.Email
	Username        valueobject.Username
	PasswordHash    valueobject.PasswordHash
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

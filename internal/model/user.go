package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin   = "ADMIN"
	RoleCleaner = "CLEANER"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
}

type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsCleaner() bool {
	return p.Role == RoleCleaner
}

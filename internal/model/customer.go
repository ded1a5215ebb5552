package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   string
	Region    Region
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

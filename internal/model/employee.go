package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID
	FullName  string
	Phone     string
	Email     string
	Region    Region
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

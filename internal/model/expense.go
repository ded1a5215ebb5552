package model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID
	Description string
	Category    string
	Amount      float64
	SpentAt     time.Time
	CreatedByID uuid.UUID
	CreatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID           uuid.UUID
	Class        string
	Student      string
	NumberOfDays int
}

type ServerStatus struct {
	ID            int       `json:"id"`
	StatusMessage string    `json:"statusMessage"`
	CheckedAt     time.Time `json:"checkedAt"`
}

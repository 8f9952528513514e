package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusInterested = "interested"
	StatusApplied    = "applied"
	StatusInterview  = "interview"
	StatusOffer      = "offer"
	StatusRejected   = "rejected"
	StatusGhosted    = "ghosted"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusInterested, StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusGhosted:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Status      string     `json:"status"`
	JobURL      *string    `json:"job_url"`
	SalaryRange *string    `json:"salary_range"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	AppliedDate *time.Time `json:"applied_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Patch carries only the fields the caller supplied; nil means "leave as is".
type Patch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Status      *string `json:"status"`
	JobURL      *string `json:"job_url"`
	SalaryRange *string `json:"salary_range"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCoverLetter = "cover_letter"
	TypeColdMessage = "cold_message"
)

func ValidType(t string) bool {
	return t == TypeCoverLetter || t == TypeColdMessage
}

var ErrInvalidType = errors.New("invalid document type")

// Document is immutable once stored; there is no update path.
type Document struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	UserID        uuid.UUID `json:"user_id"`
	Type          string    `json:"type"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, d Document) error
	ListByApplication(ctx context.Context, applicationID, userID uuid.UUID, limit int) ([]Document, error)
}

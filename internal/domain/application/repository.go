package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Application, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (Application, error)
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

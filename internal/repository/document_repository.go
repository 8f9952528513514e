package repository

import (
	"context"

	"jobtrail/internal/database"
	"jobtrail/internal/domain/document"

	"github.com/google/uuid"
)

const maxDocumentList = 100

type PostgresDocumentRepository struct {
	db database.DB
}

func NewPostgresDocumentRepository(db database.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

func (r *PostgresDocumentRepository) Create(ctx context.Context, d document.Document) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO documents (id, application_id, user_id, type, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.ApplicationID, d.UserID, d.Type, d.Content, d.CreatedAt,
	)
	return err
}

func (r *PostgresDocumentRepository) ListByApplication(ctx context.Context, applicationID, userID uuid.UUID, limit int) ([]document.Document, error) {
	if limit <= 0 || limit > maxDocumentList {
		limit = maxDocumentList
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, application_id, user_id, type, content, created_at
		 FROM documents
		 WHERE application_id = $1 AND user_id = $2
		 LIMIT $3`,
		applicationID, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]document.Document, 0)
	for rows.Next() {
		var d document.Document
		if err := rows.Scan(&d.ID, &d.ApplicationID, &d.UserID, &d.Type, &d.Content, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ document.Repository = (*PostgresDocumentRepository)(nil)

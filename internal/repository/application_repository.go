package repository

import (
	"context"

	"jobtrail/internal/database"
	"jobtrail/internal/domain/application"

	"github.com/google/uuid"
)

const maxApplicationList = 1000

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]application.Application, error) {
	if limit <= 0 || limit > maxApplicationList {
		limit = maxApplicationList
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, company, position, status, job_url, salary_range, location, notes, applied_date, created_at, updated_at
		 FROM applications
		 WHERE user_id = $1
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, company, position, status, job_url, salary_range, location, notes, applied_date, created_at, updated_at
		 FROM applications
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, company, position, status, job_url, salary_range, location, notes, applied_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.UserID, a.Company, a.Position, a.Status,
		a.JobURL, a.SalaryRange, a.Location, a.Notes,
		a.AppliedDate, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET company = $3, position = $4, status = $5, job_url = $6, salary_range = $7,
		     location = $8, notes = $9, applied_date = $10, updated_at = $11
		 WHERE id = $1 AND user_id = $2`,
		a.ID, a.UserID, a.Company, a.Position, a.Status,
		a.JobURL, a.SalaryRange, a.Location, a.Notes,
		a.AppliedDate, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID, &a.UserID, &a.Company, &a.Position, &a.Status,
		&a.JobURL, &a.SalaryRange, &a.Location, &a.Notes,
		&a.AppliedDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	return a, nil
}

var _ application.Repository = (*PostgresApplicationRepository)(nil)

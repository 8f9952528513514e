package repository

import (
	"context"

	"jobtrail/internal/database"
	"jobtrail/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, experience, skills, education, preferred_salary, preferred_location, work_mode, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p user.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Experience, &p.Skills, &p.Education,
		&p.PreferredSalary, &p.PreferredLocation, &p.WorkMode, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p user.Profile) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, experience, skills, education, preferred_salary, preferred_location, work_mode, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.Experience, p.Skills, p.Education,
		p.PreferredSalary, p.PreferredLocation, p.WorkMode, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p user.Profile) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	n, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET experience = $2, skills = $3, education = $4, preferred_salary = $5,
		     preferred_location = $6, work_mode = $7, updated_at = $8
		 WHERE user_id = $1`,
		p.UserID, p.Experience, p.Skills, p.Education,
		p.PreferredSalary, p.PreferredLocation, p.WorkMode, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

var _ user.ProfileRepository = (*PostgresProfileRepository)(nil)

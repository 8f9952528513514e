package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jobtrail/internal/domain/user"
)

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, patch user.ProfilePatch) (user.Profile, error)
}

type ProfileService struct {
	profiles user.ProfileRepository

	now func() time.Time
}

func NewProfileService(profiles user.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

// Get returns nil without error when the user has not written a profile
// yet; absence is a normal state, not a failure.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) Upsert(ctx context.Context, userID uuid.UUID, patch user.ProfilePatch) (user.Profile, error) {
	now := s.now().UTC()

	existing, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, user.ErrProfileNotFound) {
		p := user.Profile{
			ID:                uuid.New(),
			UserID:            userID,
			Experience:        patch.Experience,
			Skills:            patch.Skills,
			Education:         patch.Education,
			PreferredSalary:   patch.PreferredSalary,
			PreferredLocation: patch.PreferredLocation,
			WorkMode:          patch.WorkMode,
			UpdatedAt:         now,
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		if err := s.profiles.Create(ctx, p); err != nil {
			return user.Profile{}, err
		}
		return p, nil
	}
	if err != nil {
		return user.Profile{}, err
	}

	if patch.Experience != nil {
		existing.Experience = patch.Experience
	}
	if patch.Skills != nil {
		existing.Skills = patch.Skills
	}
	if patch.Education != nil {
		existing.Education = patch.Education
	}
	if patch.PreferredSalary != nil {
		existing.PreferredSalary = patch.PreferredSalary
	}
	if patch.PreferredLocation != nil {
		existing.PreferredLocation = patch.PreferredLocation
	}
	if patch.WorkMode != nil {
		existing.WorkMode = patch.WorkMode
	}
	existing.UpdatedAt = now

	if err := s.profiles.Update(ctx, existing); err != nil {
		return user.Profile{}, err
	}
	return existing, nil
}

var _ ProfileUsecase = (*ProfileService)(nil)

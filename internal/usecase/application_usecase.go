package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrail/internal/domain/application"
)

var ErrInvalidInput = errors.New("invalid input")

const listApplicationsLimit = 1000

type ApplicationCreateInput struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Status      string  `json:"status"`
	JobURL      *string `json:"job_url"`
	SalaryRange *string `json:"salary_range"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type ApplicationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	Create(ctx context.Context, userID uuid.UUID, in ApplicationCreateInput) (application.Application, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch application.Patch) (application.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type ApplicationService struct {
	apps application.Repository

	now func() time.Time
}

func NewApplicationService(apps application.Repository) *ApplicationService {
	return &ApplicationService{apps: apps, now: time.Now}
}

func (s *ApplicationService) List(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	return s.apps.ListByUser(ctx, userID, listApplicationsLimit)
}

func (s *ApplicationService) Create(ctx context.Context, userID uuid.UUID, in ApplicationCreateInput) (application.Application, error) {
	company := strings.TrimSpace(in.Company)
	position := strings.TrimSpace(in.Position)
	if company == "" || position == "" {
		return application.Application{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = application.StatusInterested
	}
	if !application.ValidStatus(status) {
		return application.Application{}, ErrInvalidInput
	}

	now := s.now().UTC()
	a := application.Application{
		ID:          uuid.New(),
		UserID:      userID,
		Company:     company,
		Position:    position,
		Status:      status,
		JobURL:      in.JobURL,
		SalaryRange: in.SalaryRange,
		Location:    in.Location,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == application.StatusApplied {
		a.AppliedDate = &now
	}

	if err := s.apps.Create(ctx, a); err != nil {
		return application.Application{}, err
	}
	return a, nil
}

// Update applies only the supplied fields. Moving into "applied" from any
// other status stamps applied_date; re-asserting "applied" leaves the
// original stamp untouched.
func (s *ApplicationService) Update(ctx context.Context, userID, id uuid.UUID, patch application.Patch) (application.Application, error) {
	if patch.Status != nil && !application.ValidStatus(*patch.Status) {
		return application.Application{}, ErrInvalidInput
	}

	a, err := s.apps.GetByID(ctx, id, userID)
	if err != nil {
		return application.Application{}, err
	}

	wasApplied := a.Status == application.StatusApplied

	if patch.Company != nil {
		a.Company = *patch.Company
	}
	if patch.Position != nil {
		a.Position = *patch.Position
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.JobURL != nil {
		a.JobURL = patch.JobURL
	}
	if patch.SalaryRange != nil {
		a.SalaryRange = patch.SalaryRange
	}
	if patch.Location != nil {
		a.Location = patch.Location
	}
	if patch.Notes != nil {
		a.Notes = patch.Notes
	}

	now := s.now().UTC()
	a.UpdatedAt = now
	if patch.Status != nil && *patch.Status == application.StatusApplied && !wasApplied {
		a.AppliedDate = &now
	}

	if err := s.apps.Update(ctx, a); err != nil {
		return application.Application{}, err
	}
	return a, nil
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.apps.Delete(ctx, id, userID)
}

var _ ApplicationUsecase = (*ApplicationService)(nil)

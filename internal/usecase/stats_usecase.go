package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"jobtrail/internal/domain/application"
)

type Stats struct {
	TotalApplications int            `json:"total_applications"`
	ByStatus          map[string]int `json:"by_status"`
	ResponseRate      float64        `json:"response_rate"`

	// Declared but never computed; always null in responses.
	AvgTimeToResponse *float64 `json:"avg_time_to_response"`
}

type StatsUsecase interface {
	GetStats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

type StatsService struct {
	apps application.Repository
}

func NewStatsService(apps application.Repository) *StatsService {
	return &StatsService{apps: apps}
}

// GetStats aggregates up to 1000 applications. The response rate is
// (interviews + offers) / applied as a percentage, one decimal place.
func (s *StatsService) GetStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	apps, err := s.apps.ListByUser(ctx, userID, listApplicationsLimit)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalApplications: len(apps),
		ByStatus:          map[string]int{},
	}
	for _, a := range apps {
		status := a.Status
		if status == "" {
			status = "unknown"
		}
		stats.ByStatus[status]++
	}

	applied := stats.ByStatus[application.StatusApplied]
	interviews := stats.ByStatus[application.StatusInterview]
	offers := stats.ByStatus[application.StatusOffer]

	if applied > 0 {
		rate := float64(interviews+offers) / float64(applied) * 100
		stats.ResponseRate = math.Round(rate*10) / 10
	}

	return stats, nil
}

var _ StatsUsecase = (*StatsService)(nil)

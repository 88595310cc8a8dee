package service

import (
	"context"
	"time"

	apperrors "github.com/umalmyha/crmtrack/internal/errors"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/internal/repository"
)

// DefaultFollowUpsLimit caps the upcoming follow-ups feed
const DefaultFollowUpsLimit = 5

// DashboardService is the read-side projection behind the dashboard. Both
// computations are stateless, nothing is persisted or cached: every call
// recomputes from the stores at its own moment in time.
type DashboardService interface {
	Stats(ctx context.Context, ownerID string) (*model.Stats, error)
	UpcomingFollowUps(ctx context.Context, ownerID string, limit int) ([]*model.FollowUp, error)
}

type dashboardService struct {
	customerRepo    repository.CustomerRepository
	interactionRepo repository.InteractionRepository
}

// NewDashboardService builds new DashboardService
func NewDashboardService(customerRepo repository.CustomerRepository, interactionRepo repository.InteractionRepository) DashboardService {
	return &dashboardService{customerRepo: customerRepo, interactionRepo: interactionRepo}
}

// Stats partitions the owner's customers by status, total is the sum of the
// three buckets by construction
func (s *dashboardService) Stats(ctx context.Context, ownerID string) (*model.Stats, error) {
	customers, err := s.customerRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	stats := &model.Stats{}
	for _, c := range customers {
		stats.Total++
		switch c.Status {
		case model.StatusLead:
			stats.Leads++
		case model.StatusActive:
			stats.Active++
		case model.StatusClosed:
			stats.Closed++
		}
	}
	return stats, nil
}

// UpcomingFollowUps returns reminders due at or after the query moment,
// earliest first. Limit is clamped to DefaultFollowUpsLimit.
func (s *dashboardService) UpcomingFollowUps(ctx context.Context, ownerID string, limit int) ([]*model.FollowUp, error) {
	if limit <= 0 || limit > DefaultFollowUpsLimit {
		limit = DefaultFollowUpsLimit
	}

	followUps, err := s.interactionRepo.FindUpcomingByOwner(ctx, ownerID, time.Now().UTC(), limit)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return followUps, nil
}

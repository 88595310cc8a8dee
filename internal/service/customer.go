package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/crmtrack/internal/cache"
	apperrors "github.com/umalmyha/crmtrack/internal/errors"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/internal/repository"
)

// CustomerService handles the customer record lifecycle. The acting identity
// is an explicit argument everywhere: it scopes every read and is forced into
// every write, whatever the client claims about ownership.
type CustomerService interface {
	FindAll(ctx context.Context, ownerID string) ([]*model.Customer, error)
	FindByID(ctx context.Context, ownerID string, id string) (*model.Customer, error)
	Create(ctx context.Context, ownerID string, nc *model.NewCustomer) (*model.Customer, error)
	Update(ctx context.Context, ownerID string, id string, patch *model.CustomerPatch) (*model.Customer, error)
	DeleteByID(ctx context.Context, ownerID string, id string) error
	Search(ctx context.Context, ownerID string, query string) ([]*model.Customer, error)
}

type customerService struct {
	customerRepo  repository.CustomerRepository
	customerCache cache.CustomerCacheRepository
}

// NewCustomerService builds new CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository, customerCache cache.CustomerCacheRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, customerCache: customerCache}
}

func (s *customerService) FindAll(ctx context.Context, ownerID string) ([]*model.Customer, error) {
	customers, err := s.customerRepo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return customers, nil
}

func (s *customerService) FindByID(ctx context.Context, ownerID string, id string) (*model.Customer, error) {
	cached, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	// a cached row of another owner must look exactly like an absent one
	if cached != nil {
		if cached.OwnerID != ownerID {
			return nil, apperrors.NewNotFoundErr("customer not found")
		}
		return cached, nil
	}

	c, err := s.customerRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	if c == nil {
		return nil, apperrors.NewNotFoundErr("customer not found")
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, ownerID string, nc *model.NewCustomer) (*model.Customer, error) {
	name := strings.TrimSpace(nc.Name)
	if name == "" {
		return nil, apperrors.NewValidationErr("name", "customer name must not be empty")
	}

	status := nc.Status
	if status == "" {
		status = model.StatusLead
	}

	if !status.Valid() {
		return nil, apperrors.NewValidationErr("status", "status must be one of Lead, Active or Closed")
	}

	c := &model.Customer{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Email:     nc.Email,
		Phone:     nc.Phone,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, ownerID string, id string, patch *model.CustomerPatch) (*model.Customer, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.NewValidationErr("name", "customer name must not be empty")
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperrors.NewValidationErr("status", "status must be one of Lead, Active or Closed")
	}

	existing, err := s.customerRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	if existing == nil {
		return nil, apperrors.NewNotFoundErr("customer not found")
	}

	merged := existing.MergePatch(*patch)
	merged.Name = strings.TrimSpace(merged.Name)

	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	updated, err := s.customerRepo.Update(ctx, &merged)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}

	if !updated {
		return nil, apperrors.NewNotFoundErr("customer not found")
	}
	return &merged, nil
}

func (s *customerService) DeleteByID(ctx context.Context, ownerID string, id string) error {
	if err := s.customerCache.DeleteByID(ctx, id); err != nil {
		return apperrors.NewStoreErr(err)
	}

	deleted, err := s.customerRepo.DeleteByID(ctx, ownerID, id)
	if err != nil {
		return apperrors.NewStoreErr(err)
	}

	if !deleted {
		return apperrors.NewNotFoundErr("customer not found")
	}
	return nil
}

// Search filters the owned set locally: case-insensitive substring against
// name or email, empty query means the full list
func (s *customerService) Search(ctx context.Context, ownerID string, query string) ([]*model.Customer, error) {
	customers, err := s.FindAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return customers, nil
	}

	matched := make([]*model.Customer, 0)
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), query) {
			matched = append(matched, c)
			continue
		}

		if c.Email != nil && strings.Contains(strings.ToLower(*c.Email), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

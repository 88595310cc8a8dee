package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/umalmyha/crmtrack/internal/errors"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/internal/repository"
)

// InteractionService handles the append-only interaction ledger of a customer
type InteractionService interface {
	History(ctx context.Context, ownerID string, customerID string) ([]*model.Interaction, error)
	Log(ctx context.Context, ownerID string, customerID string, ni *model.NewInteraction) (*model.Interaction, error)
	Remove(ctx context.Context, ownerID string, id string) error
}

type interactionService struct {
	interactionRepo repository.InteractionRepository
	customerRepo    repository.CustomerRepository
}

// NewInteractionService builds new InteractionService
func NewInteractionService(interactionRepo repository.InteractionRepository, customerRepo repository.CustomerRepository) InteractionService {
	return &interactionService{interactionRepo: interactionRepo, customerRepo: customerRepo}
}

func (s *interactionService) History(ctx context.Context, ownerID string, customerID string) ([]*model.Interaction, error) {
	if err := s.checkCustomer(ctx, ownerID, customerID); err != nil {
		return nil, err
	}

	interactions, err := s.interactionRepo.FindAllByCustomer(ctx, ownerID, customerID)
	if err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return interactions, nil
}

func (s *interactionService) Log(ctx context.Context, ownerID string, customerID string, ni *model.NewInteraction) (*model.Interaction, error) {
	notes := strings.TrimSpace(ni.Notes)
	if notes == "" {
		return nil, apperrors.NewValidationErr("notes", "interaction notes must not be empty")
	}

	if !ni.Type.Valid() {
		return nil, apperrors.NewValidationErr("type", "type must be one of call, email or meeting")
	}

	if err := s.checkCustomer(ctx, ownerID, customerID); err != nil {
		return nil, err
	}

	interactionDate := time.Now().UTC()
	if ni.InteractionDate != nil {
		interactionDate = *ni.InteractionDate
	}

	i := &model.Interaction{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		OwnerID:         ownerID,
		Type:            ni.Type,
		Notes:           notes,
		InteractionDate: interactionDate,
		FollowUpDate:    ni.FollowUpDate,
	}

	if err := s.interactionRepo.Create(ctx, i); err != nil {
		return nil, apperrors.NewStoreErr(err)
	}
	return i, nil
}

// Remove deletes a single ledger entry and nothing else, callers may drop the
// row from an already fetched history without refetching
func (s *interactionService) Remove(ctx context.Context, ownerID string, id string) error {
	deleted, err := s.interactionRepo.DeleteByID(ctx, ownerID, id)
	if err != nil {
		return apperrors.NewStoreErr(err)
	}

	if !deleted {
		return apperrors.NewNotFoundErr("interaction not found")
	}
	return nil
}

func (s *interactionService) checkCustomer(ctx context.Context, ownerID string, customerID string) error {
	c, err := s.customerRepo.FindByID(ctx, ownerID, customerID)
	if err != nil {
		return apperrors.NewStoreErr(err)
	}

	if c == nil {
		return apperrors.NewNotFoundErr("customer not found")
	}
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

// RentalServiceInterface drives the request lifecycle:
// pending -> approved|rejected, then approved -> completed once both parties
// have marked the rental done.
type RentalServiceInterface interface {
	CreateRequest(ctx context.Context, requesterID, itemID uuid.UUID, startDate, endDate time.Time) (*db_models.RentalRequest, error)
	ReviewRequest(ctx context.Context, requestID, callerID uuid.UUID, action string) (*db_models.RentalRequest, error)
	MarkCompleted(ctx context.Context, requestID, callerID uuid.UUID) (*db_models.RentalRequest, error)
	ListByItem(ctx context.Context, itemID, callerID uuid.UUID) ([]response_models.RentalRequestDetail, error)
	ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.RentalRequestDetail, error)
	ListApprovedForRequester(ctx context.Context, requesterID uuid.UUID) ([]response_models.RentalRequestDetail, error)
	ListActiveForOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.RentalRequestDetail, error)
}

const (
	RentalActionApprove = "approve"
	RentalActionReject  = "reject"
)

type RentalService struct {
	rentalRepo repositories.RentalRepository
	itemRepo   repositories.ItemRepository
	userRepo   repositories.UserRepository
	logger     *zap.Logger
}

func NewRentalService(
	rentalRepo repositories.RentalRepository,
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) RentalServiceInterface {
	return &RentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *RentalService) CreateRequest(ctx context.Context, requesterID, itemID uuid.UUID, startDate, endDate time.Time) (*db_models.RentalRequest, error) {
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidDateRange
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	if !item.IsAvailable {
		return nil, utils.ErrItemUnavailable
	}
	if item.OwnerID == requesterID {
		return nil, utils.ErrSelfRental
	}

	request := &db_models.RentalRequest{
		ItemID:      itemID,
		RequesterID: requesterID,
		StartDate:   startDate.Unix(),
		EndDate:     endDate.Unix(),
		Status:      db_models.RentalStatusPending,
	}
	if err := s.rentalRepo.Insert(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("rental request created",
		zap.String("request_id", request.ID.String()),
		zap.String("item_id", itemID.String()),
		zap.String("requester_id", requesterID.String()))
	return request, nil
}

func (s *RentalService) ReviewRequest(ctx context.Context, requestID, callerID uuid.UUID, action string) (*db_models.RentalRequest, error) {
	if action != RentalActionApprove && action != RentalActionReject {
		return nil, utils.ErrInvalidAction
	}

	request, err := s.rentalRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, utils.ErrRequestNotFound
	}

	item, err := s.itemRepo.FindByID(ctx, request.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	if item.OwnerID != callerID {
		return nil, utils.ErrNotItemOwner
	}
	if request.Status != db_models.RentalStatusPending {
		return nil, utils.ErrAlreadyProcessed
	}

	status := db_models.RentalStatusRejected
	if action == RentalActionApprove {
		status = db_models.RentalStatusApproved
	}
	if err := s.rentalRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	// An approved rental takes the item off the listings until both
	// parties close it out.
	if status == db_models.RentalStatusApproved {
		if err := s.itemRepo.SetAvailability(ctx, item.ID, false); err != nil {
			return nil, err
		}
	}

	request.Status = status
	request.UpdatedAt = time.Now().Unix()
	s.logger.Info("rental request reviewed",
		zap.String("request_id", requestID.String()),
		zap.String("status", status))
	return request, nil
}

func (s *RentalService) MarkCompleted(ctx context.Context, requestID, callerID uuid.UUID) (*db_models.RentalRequest, error) {
	request, err := s.rentalRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, utils.ErrRequestNotFound
	}
	if request.Status != db_models.RentalStatusApproved {
		return nil, utils.ErrRentalNotApproved
	}

	item, err := s.itemRepo.FindByID(ctx, request.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}

	isLender := item.OwnerID == callerID
	isBorrower := request.RequesterID == callerID
	if !isLender && !isBorrower {
		return nil, utils.ErrNotRentalParty
	}

	// Re-invoking by the same party is a no-op, not an error.
	if (isLender && request.CompletedByLender) || (isBorrower && request.CompletedByBorrower) {
		return request, nil
	}

	updated, err := s.rentalRepo.MarkCompleted(ctx, requestID, isLender)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrRequestNotFound
	}

	if updated.EffectivelyCompleted() {
		if err := s.itemRepo.SetAvailability(ctx, item.ID, true); err != nil {
			return nil, err
		}
		s.logger.Info("rental completed by both parties",
			zap.String("request_id", requestID.String()))
	}
	return updated, nil
}

func (s *RentalService) ListByItem(ctx context.Context, itemID, callerID uuid.UUID) ([]response_models.RentalRequestDetail, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrItemNotFound
	}
	if item.OwnerID != callerID {
		return nil, utils.ErrNotItemOwner
	}

	requests, err := s.rentalRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, requests, nil)
}

func (s *RentalService) ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.RentalRequestDetail, error) {
	requests, err := s.rentalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, requests, func(r *db_models.RentalRequest) bool {
		return r.Status == db_models.RentalStatusPending
	})
}

func (s *RentalService) ListApprovedForRequester(ctx context.Context, requesterID uuid.UUID) ([]response_models.RentalRequestDetail, error) {
	requests, err := s.rentalRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, requests, func(r *db_models.RentalRequest) bool {
		return r.Status == db_models.RentalStatusApproved
	})
}

func (s *RentalService) ListActiveForOwner(ctx context.Context, ownerID uuid.UUID) ([]response_models.RentalRequestDetail, error) {
	requests, err := s.rentalRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, requests, func(r *db_models.RentalRequest) bool {
		return r.Status == db_models.RentalStatusApproved
	})
}

// decorate assembles the detail rows, filtering first when a predicate is
// given.
func (s *RentalService) decorate(ctx context.Context, requests []db_models.RentalRequest, keep func(*db_models.RentalRequest) bool) ([]response_models.RentalRequestDetail, error) {
	details := make([]response_models.RentalRequestDetail, 0, len(requests))
	for i := range requests {
		request := requests[i]
		if keep != nil && !keep(&request) {
			continue
		}

		detail := response_models.RentalRequestDetail{RentalRequest: request}

		item, err := s.itemRepo.FindByID(ctx, request.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			detail.Item = &response_models.ItemSummary{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				ImageData:   item.ImageData,
			}
			owner, err := s.userRepo.FindByID(ctx, item.OwnerID)
			if err != nil {
				return nil, err
			}
			if owner != nil {
				detail.Owner = userSummary(owner)
			}
		}

		requester, err := s.userRepo.FindByID(ctx, request.RequesterID)
		if err != nil {
			return nil, err
		}
		if requester != nil {
			detail.Requester = userSummary(requester)
		}

		details = append(details, detail)
	}
	return details, nil
}

func userSummary(user *db_models.User) *response_models.UserSummary {
	return &response_models.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Hostel:   user.Hostel,
	}
}

package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

const (
	VerificationActionApprove = "approve"
	VerificationActionReject  = "reject"
)

type VerificationServiceInterface interface {
	Submit(ctx context.Context, userID uuid.UUID, idImageData string) (*db_models.VerificationRequest, error)
	Status(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error)
	ListPending(ctx context.Context) ([]response_models.VerificationDetail, error)
	Review(ctx context.Context, requestID, reviewerID uuid.UUID, action, notes string) (*db_models.VerificationRequest, error)
}

type VerificationService struct {
	verificationRepo repositories.VerificationRepository
	userRepo         repositories.UserRepository
	logger           *zap.Logger
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) VerificationServiceInterface {
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *VerificationService) Submit(ctx context.Context, userID uuid.UUID, idImageData string) (*db_models.VerificationRequest, error) {
	// A rejected request may be retried with a new photo; a pending or
	// approved one may not be duplicated.
	existing, err := s.verificationRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != db_models.VerificationStatusRejected {
		return nil, utils.ErrVerificationPending
	}

	request := &db_models.VerificationRequest{
		UserID:      userID,
		IDImageData: idImageData,
		Status:      db_models.VerificationStatusPending,
	}
	if err := s.verificationRepo.Insert(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("verification request submitted", zap.String("user_id", userID.String()))
	return request, nil
}

func (s *VerificationService) Status(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error) {
	request, err := s.verificationRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, utils.ErrVerificationNotFound
	}
	return request, nil
}

func (s *VerificationService) ListPending(ctx context.Context) ([]response_models.VerificationDetail, error) {
	requests, err := s.verificationRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]response_models.VerificationDetail, 0, len(requests))
	for i := range requests {
		detail := response_models.VerificationDetail{VerificationRequest: requests[i]}
		user, err := s.userRepo.FindByID(ctx, requests[i].UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			detail.User = userSummary(user)
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *VerificationService) Review(ctx context.Context, requestID, reviewerID uuid.UUID, action, notes string) (*db_models.VerificationRequest, error) {
	if action != VerificationActionApprove && action != VerificationActionReject {
		return nil, utils.ErrInvalidAction
	}

	request, err := s.verificationRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, utils.ErrVerificationNotFound
	}
	if request.Status != db_models.VerificationStatusPending {
		return nil, utils.ErrVerificationProcessed
	}

	status := db_models.VerificationStatusRejected
	if action == VerificationActionApprove {
		status = db_models.VerificationStatusApproved
	}

	reviewedAt := utils.NowUnixSeconds()
	if err := s.verificationRepo.Review(ctx, requestID, status, reviewerID, reviewedAt, notes); err != nil {
		return nil, err
	}

	if status == db_models.VerificationStatusApproved {
		if err := s.userRepo.SetVerified(ctx, request.UserID, true); err != nil {
			return nil, err
		}
	}

	request.Status = status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt
	request.Notes = notes
	s.logger.Info("verification request reviewed",
		zap.String("request_id", requestID.String()),
		zap.String("status", status))
	return request, nil
}

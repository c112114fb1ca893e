package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"closetshare/internal/models/db_models"
	"closetshare/internal/models/request_models"
	"closetshare/internal/models/response_models"
	"closetshare/internal/repositories"
	"closetshare/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*response_models.PublicProfile, error)
	IsUserVerified(ctx context.Context, userID uuid.UUID) (bool, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
	logger   *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		FullName:     request.FullName,
		Hostel:       request.Hostel,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", user.Username))
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, *db_models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AccountService) GetUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *AccountService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*response_models.PublicProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	itemCount, err := s.itemRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &response_models.PublicProfile{
		ID:          user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		Hostel:      user.Hostel,
		IsVerified:  user.IsVerified,
		AvgRating:   utils.UnscaleRating(user.AvgRating),
		RatingCount: user.RatingCount,
		ItemCount:   int(itemCount),
	}, nil
}

func (s *AccountService) IsUserVerified(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsVerified, nil
}

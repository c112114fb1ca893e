package services_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"closetshare/internal/models/db_models"
)

// Hand-rolled repository doubles: set only the functions a test needs,
// everything else answers "not found".

type userRepoMock struct {
	insertFn         func(ctx context.Context, user *db_models.User) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*db_models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*db_models.User, error)
	setVerifiedFn    func(ctx context.Context, id uuid.UUID, verified bool) error
}

func (m *userRepoMock) Insert(ctx context.Context, user *db_models.User) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, user)
}

func (m *userRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	if m.findByUsernameFn == nil {
		return nil, nil
	}
	return m.findByUsernameFn(ctx, username)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func (m *userRepoMock) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	if m.setVerifiedFn == nil {
		return nil
	}
	return m.setVerifiedFn(ctx, id, verified)
}

type itemRepoMock struct {
	insertFn          func(ctx context.Context, item *db_models.Item) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*db_models.Item, error)
	listFn            func(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]db_models.Item, error)
	listByOwnerFn     func(ctx context.Context, ownerID uuid.UUID) ([]db_models.Item, error)
	countByOwnerFn    func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	setAvailabilityFn func(ctx context.Context, id uuid.UUID, available bool) error
}

func (m *itemRepoMock) Insert(ctx context.Context, item *db_models.Item) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, item)
}

func (m *itemRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Item, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *itemRepoMock) List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int) ([]db_models.Item, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, categoryID, page, pageSize)
}

func (m *itemRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Item, error) {
	if m.listByOwnerFn == nil {
		return nil, nil
	}
	return m.listByOwnerFn(ctx, ownerID)
}

func (m *itemRepoMock) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.countByOwnerFn == nil {
		return 0, nil
	}
	return m.countByOwnerFn(ctx, ownerID)
}

func (m *itemRepoMock) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if m.setAvailabilityFn == nil {
		return nil
	}
	return m.setAvailabilityFn(ctx, id, available)
}

type categoryRepoMock struct {
	insertFn     func(ctx context.Context, category *db_models.Category) error
	findByNameFn func(ctx context.Context, name string) (*db_models.Category, error)
	findByIDFn   func(ctx context.Context, id string) (*db_models.Category, error)
	listFn       func(ctx context.Context) ([]db_models.Category, error)
}

func (m *categoryRepoMock) Insert(ctx context.Context, category *db_models.Category) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, category)
}

func (m *categoryRepoMock) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	if m.findByNameFn == nil {
		return nil, nil
	}
	return m.findByNameFn(ctx, name)
}

func (m *categoryRepoMock) FindByID(ctx context.Context, id string) (*db_models.Category, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *categoryRepoMock) List(ctx context.Context) ([]db_models.Category, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

type rentalRepoMock struct {
	insertFn          func(ctx context.Context, request *db_models.RentalRequest) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*db_models.RentalRequest, error)
	listByItemFn      func(ctx context.Context, itemID uuid.UUID) ([]db_models.RentalRequest, error)
	listByRequesterFn func(ctx context.Context, requesterID uuid.UUID) ([]db_models.RentalRequest, error)
	listByOwnerFn     func(ctx context.Context, ownerID uuid.UUID) ([]db_models.RentalRequest, error)
	updateStatusFn    func(ctx context.Context, id uuid.UUID, status string) error
	markCompletedFn   func(ctx context.Context, id uuid.UUID, byLender bool) (*db_models.RentalRequest, error)
}

func (m *rentalRepoMock) Insert(ctx context.Context, request *db_models.RentalRequest) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, request)
}

func (m *rentalRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*db_models.RentalRequest, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *rentalRepoMock) ListByItem(ctx context.Context, itemID uuid.UUID) ([]db_models.RentalRequest, error) {
	if m.listByItemFn == nil {
		return nil, nil
	}
	return m.listByItemFn(ctx, itemID)
}

func (m *rentalRepoMock) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]db_models.RentalRequest, error) {
	if m.listByRequesterFn == nil {
		return nil, nil
	}
	return m.listByRequesterFn(ctx, requesterID)
}

func (m *rentalRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.RentalRequest, error) {
	if m.listByOwnerFn == nil {
		return nil, nil
	}
	return m.listByOwnerFn(ctx, ownerID)
}

func (m *rentalRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, id, status)
}

func (m *rentalRepoMock) MarkCompleted(ctx context.Context, id uuid.UUID, byLender bool) (*db_models.RentalRequest, error) {
	if m.markCompletedFn == nil {
		return nil, nil
	}
	return m.markCompletedFn(ctx, id, byLender)
}

type ratingRepoMock struct {
	findByRequestAndRaterFn func(ctx context.Context, requestID, raterID uuid.UUID) (*db_models.Rating, error)
	listForUserFn           func(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error)
	submitAndRecomputeFn    func(ctx context.Context, rating *db_models.Rating) (int, int, error)
}

func (m *ratingRepoMock) FindByRequestAndRater(ctx context.Context, requestID, raterID uuid.UUID) (*db_models.Rating, error) {
	if m.findByRequestAndRaterFn == nil {
		return nil, nil
	}
	return m.findByRequestAndRaterFn(ctx, requestID, raterID)
}

func (m *ratingRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Rating, error) {
	if m.listForUserFn == nil {
		return nil, nil
	}
	return m.listForUserFn(ctx, userID)
}

func (m *ratingRepoMock) SubmitAndRecompute(ctx context.Context, rating *db_models.Rating) (int, int, error) {
	if m.submitAndRecomputeFn == nil {
		return 0, 0, nil
	}
	return m.submitAndRecomputeFn(ctx, rating)
}

type verificationRepoMock struct {
	insertFn           func(ctx context.Context, request *db_models.VerificationRequest) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*db_models.VerificationRequest, error)
	findLatestByUserFn func(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error)
	listPendingFn      func(ctx context.Context) ([]db_models.VerificationRequest, error)
	reviewFn           func(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewedAt int64, notes string) error
}

func (m *verificationRepoMock) Insert(ctx context.Context, request *db_models.VerificationRequest) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, request)
}

func (m *verificationRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*db_models.VerificationRequest, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *verificationRepoMock) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*db_models.VerificationRequest, error) {
	if m.findLatestByUserFn == nil {
		return nil, nil
	}
	return m.findLatestByUserFn(ctx, userID)
}

func (m *verificationRepoMock) ListPending(ctx context.Context) ([]db_models.VerificationRequest, error) {
	if m.listPendingFn == nil {
		return nil, nil
	}
	return m.listPendingFn(ctx)
}

func (m *verificationRepoMock) Review(ctx context.Context, id uuid.UUID, status string, reviewedBy uuid.UUID, reviewedAt int64, notes string) error {
	if m.reviewFn == nil {
		return nil
	}
	return m.reviewFn(ctx, id, status, reviewedBy, reviewedAt, notes)
}

type messageRepoMock struct {
	insertFn         func(ctx context.Context, message *db_models.Message) error
	conversationFn   func(ctx context.Context, user1ID, user2ID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error)
	listByUserFn     func(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error)
	markThreadReadFn func(ctx context.Context, toUserID, fromUserID uuid.UUID, itemID uuid.UUID) error
}

func (m *messageRepoMock) Insert(ctx context.Context, message *db_models.Message) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, message)
}

func (m *messageRepoMock) Conversation(ctx context.Context, user1ID, user2ID uuid.UUID, itemID *uuid.UUID) ([]db_models.Message, error) {
	if m.conversationFn == nil {
		return nil, nil
	}
	return m.conversationFn(ctx, user1ID, user2ID, itemID)
}

func (m *messageRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Message, error) {
	if m.listByUserFn == nil {
		return nil, nil
	}
	return m.listByUserFn(ctx, userID)
}

func (m *messageRepoMock) MarkThreadRead(ctx context.Context, toUserID, fromUserID uuid.UUID, itemID uuid.UUID) error {
	if m.markThreadReadFn == nil {
		return nil
	}
	return m.markThreadReadFn(ctx, toUserID, fromUserID, itemID)
}

// memRentalRepo is a stateful double with the same completion semantics as
// the database-backed repository: targeted flag set, status flips to
// completed only once both flags are true.
type memRentalRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*db_models.RentalRequest
}

func newMemRentalRepo() *memRentalRepo {
	return &memRentalRepo{requests: make(map[uuid.UUID]*db_models.RentalRequest)}
}

func (m *memRentalRepo) Insert(_ context.Context, request *db_models.RentalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	clone := *request
	m.requests[request.ID] = &clone
	return nil
}

func (m *memRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.RentalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *request
	return &clone, nil
}

func (m *memRentalRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]db_models.RentalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.RentalRequest
	for _, r := range m.requests {
		if r.ItemID == itemID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRentalRepo) ListByRequester(_ context.Context, requesterID uuid.UUID) ([]db_models.RentalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.RentalRequest
	for _, r := range m.requests {
		if r.RequesterID == requesterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRentalRepo) ListByOwner(_ context.Context, _ uuid.UUID) ([]db_models.RentalRequest, error) {
	return nil, nil
}

func (m *memRentalRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if request, ok := m.requests[id]; ok {
		request.Status = status
	}
	return nil
}

func (m *memRentalRepo) MarkCompleted(_ context.Context, id uuid.UUID, byLender bool) (*db_models.RentalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	if byLender {
		request.CompletedByLender = true
	} else {
		request.CompletedByBorrower = true
	}
	if request.EffectivelyCompleted() {
		request.Status = db_models.RentalStatusCompleted
	}
	clone := *request
	return &clone, nil
}

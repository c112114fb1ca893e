package utils

import "errors"

// Missing entities.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrRequestNotFound      = errors.New("rental request not found")
	ErrVerificationNotFound = errors.New("verification request not found")
)

// Valid entity, wrong state for the transition.
var (
	ErrItemUnavailable       = errors.New("item is not available for rent")
	ErrAlreadyProcessed      = errors.New("rental request has already been processed")
	ErrRentalNotApproved     = errors.New("only approved rentals can be marked as completed")
	ErrRentalNotCompleted    = errors.New("rental must be completed by both parties before rating")
	ErrAlreadyRated          = errors.New("you have already rated this rental")
	ErrVerificationPending   = errors.New("you already have a pending verification request")
	ErrVerificationProcessed = errors.New("verification request has already been processed")
)

// Caller not authorized for the entity/action.
var (
	ErrNotItemOwner   = errors.New("you do not own this item")
	ErrNotRentalParty = errors.New("only parties involved in the rental can do this")
	ErrNotVerified    = errors.New("account must be verified first")
)

// Malformed input.
var (
	ErrInvalidDateRange  = errors.New("end date must not be before start date")
	ErrSelfRental        = errors.New("you cannot rent your own item")
	ErrInvalidScore      = errors.New("rating must be between 1 and 5")
	ErrWrongRatingTarget = errors.New("rated user must be the other party of the rental")
	ErrInvalidAction     = errors.New(`action must be "approve" or "reject"`)
	ErrInvalidPrice      = errors.New("price per day must be greater than zero")
	ErrEmptyMessage      = errors.New("message content is required")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrEmailTaken        = errors.New("email already exists")
	ErrCategoryTaken     = errors.New("category already exists")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")
)

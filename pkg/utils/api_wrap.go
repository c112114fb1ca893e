package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// HandleServiceError maps service-level errors onto the HTTP taxonomy:
// missing entity -> 404, wrong state -> 409, wrong caller -> 403,
// malformed input -> 400. Anything unrecognized is a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case isAny(err, ErrUserNotFound, ErrItemNotFound, ErrCategoryNotFound,
		ErrRequestNotFound, ErrVerificationNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case isAny(err, ErrItemUnavailable, ErrAlreadyProcessed, ErrRentalNotApproved,
		ErrRentalNotCompleted, ErrAlreadyRated, ErrVerificationPending,
		ErrVerificationProcessed):
		RespondError(c, http.StatusConflict, err.Error())
	case isAny(err, ErrNotItemOwner, ErrNotRentalParty, ErrNotVerified):
		RespondError(c, http.StatusForbidden, err.Error())
	case isAny(err, ErrInvalidDateRange, ErrSelfRental, ErrInvalidScore,
		ErrWrongRatingTarget, ErrInvalidAction, ErrInvalidPrice, ErrEmptyMessage,
		ErrUsernameTaken, ErrEmailTaken, ErrCategoryTaken):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

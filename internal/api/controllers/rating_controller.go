package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"closetshare/internal/models/request_models"
	"closetshare/internal/services"
	"closetshare/pkg/middleware"
	"closetshare/pkg/utils"
)

type RatingController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingController(ratingService services.RatingServiceInterface) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// Submit godoc
// @Summary Rate the counterparty of a completed rental
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body request_models.SubmitRatingRequest true "Rating payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /rental-ratings [post]
func (r *RatingController) Submit(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	requestID, err := uuid.Parse(req.RentalRequestID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rental request ID")
		return
	}
	ratedUserID, err := uuid.Parse(req.RatedUserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rated user ID")
		return
	}

	rating, err := r.ratingService.SubmitRating(c.Request.Context(), callerID, requestID, ratedUserID, req.Score, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, rating, "Rating submitted")
}

func (r *RatingController) ListForUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ratings, err := r.ratingService.ListUserRatings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ratings, "")
}

func (r *RatingController) Aggregate(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	aggregate, err := r.ratingService.GetUserAggregate(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, aggregate, "")
}

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

type RentalController struct {
	rentalService services.RentalServiceInterface
}

func NewRentalController(rentalService services.RentalServiceInterface) *RentalController {
	return &RentalController{rentalService: rentalService}
}

// Create godoc
// @Summary Request to rent an item
// @Tags Rentals
// @Accept json
// @Produce json
// @Param request body request_models.CreateRentalRequest true "Rental request payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /rental-requests [post]
func (r *RentalController) Create(c *gin.Context) {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid end date")
		return
	}

	request, err := r.rentalService.CreateRequest(c.Request.Context(), requesterID, itemID, startDate, endDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, request, "Rental request created")
}

// Review handles the owner's approve/reject decision on a pending request.
func (r *RentalController) Review(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req request_models.ReviewRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := r.rentalService.ReviewRequest(c.Request.Context(), requestID, callerID, req.Action)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Rental request reviewed")
}

// Complete marks the rental done for whichever party the caller is. The
// request transitions to completed only once both parties have called this.
func (r *RentalController) Complete(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	request, err := r.rentalService.MarkCompleted(c.Request.Context(), requestID, callerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Rental completion recorded")
}

func (r *RentalController) ListByItem(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	requests, err := r.rentalService.ListByItem(c.Request.Context(), itemID, callerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "")
}

func (r *RentalController) PendingForOwner(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := r.rentalService.ListPendingForOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "")
}

func (r *RentalController) Mine(c *gin.Context) {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := r.rentalService.ListApprovedForRequester(c.Request.Context(), requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "")
}

func (r *RentalController) ActiveForOwner(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requests, err := r.rentalService.ListActiveForOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "")
}

package controllers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"closetshare/internal/models/request_models"
	"closetshare/internal/services"
	"closetshare/pkg/middleware"
	"closetshare/pkg/utils"
)

// 10 MB, same cap as the item image upload.
const maxIDImageBytes = 10 << 20

type VerificationController struct {
	verificationService services.VerificationServiceInterface
}

func NewVerificationController(verificationService services.VerificationServiceInterface) *VerificationController {
	return &VerificationController{verificationService: verificationService}
}

// Submit expects a multipart form with the ID photo under "id_image".
func (v *VerificationController) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	imageData, err := readImageField(c, "id_image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ID image is required")
		return
	}

	request, err := v.verificationService.Submit(c.Request.Context(), userID, imageData)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, request, "Verification request submitted")
}

func (v *VerificationController) Status(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	request, err := v.verificationService.Status(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "")
}

func (v *VerificationController) ListPending(c *gin.Context) {
	requests, err := v.verificationService.ListPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "")
}

func (v *VerificationController) Review(c *gin.Context) {
	reviewerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req request_models.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := v.verificationService.Review(c.Request.Context(), requestID, reviewerID, req.Action, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, request, "Verification request reviewed")
}

func readImageField(c *gin.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxIDImageBytes))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

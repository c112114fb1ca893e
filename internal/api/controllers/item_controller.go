package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"closetshare/internal/models/request_models"
	"closetshare/internal/services"
	"closetshare/pkg/middleware"
	"closetshare/pkg/utils"
)

type ItemController struct {
	itemService services.ItemServiceInterface
}

func NewItemController(itemService services.ItemServiceInterface) *ItemController {
	return &ItemController{itemService: itemService}
}

// Create expects a multipart form: the item fields plus the photo under
// "image".
func (i *ItemController) Create(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	imageData, err := readImageField(c, "image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Item image is required")
		return
	}

	item, err := i.itemService.Create(c.Request.Context(), ownerID, req, imageData)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Item listed successfully")
}

// List godoc
// @Summary List items
// @Tags Items
// @Param categoryId query string false "Filter by category"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /items [get]
func (i *ItemController) List(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
			return
		}
		categoryID = &id
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	items, err := i.itemService.List(c.Request.Context(), categoryID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

func (i *ItemController) Get(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := i.itemService.Get(c.Request.Context(), itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "")
}

func (i *ItemController) ListByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	items, err := i.itemService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

func (i *ItemController) Mine(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	items, err := i.itemService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

func (i *ItemController) SetAvailability(c *gin.Context) {
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

	var req request_models.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := i.itemService.SetAvailability(c.Request.Context(), itemID, callerID, *req.IsAvailable)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Item availability updated")
}

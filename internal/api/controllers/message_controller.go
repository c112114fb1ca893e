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

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{messageService: messageService}
}

func (m *MessageController) Send(c *gin.Context) {
	fromUserID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	toUserID, err := uuid.Parse(req.ToUserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid recipient ID")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	message, err := m.messageService.Send(c.Request.Context(), fromUserID, toUserID, &itemID, req.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, message, "Message sent")
}

// Thread returns the conversation with another user, optionally scoped to an
// item via the itemId query parameter.
func (m *MessageController) Thread(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	otherUserID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userId is required")
		return
	}

	var itemID *uuid.UUID
	if raw := c.Query("itemId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
			return
		}
		itemID = &id
	}

	messages, err := m.messageService.Thread(c.Request.Context(), userID, otherUserID, itemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}

func (m *MessageController) Threads(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	threads, err := m.messageService.Threads(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, threads, "")
}

func (m *MessageController) MarkRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.MarkThreadReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	fromUserID, err := uuid.Parse(req.FromUserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sender ID")
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := m.messageService.MarkThreadRead(c.Request.Context(), userID, fromUserID, itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Thread marked as read")
}

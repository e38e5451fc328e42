package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
)

type ChatHandler struct {
	svc *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "message is required"})
		return
	}

	reply, err := h.svc.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "message is required"})
			return
		}
		if errors.Is(err, service.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: errDetail(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "failed to get response from AI"})
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{Response: reply})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "email and password required"})
		return
	}

	token, user, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "email and password required"})
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User: model.PublicUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// Verify godoc
// @Summary Verify a bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VerifyResponse
// @Failure 401 {object} model.VerifyResponse
// @Router /api/auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, model.VerifyResponse{Valid: false})
		return
	}

	user, err := h.svc.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, model.VerifyResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, model.VerifyResponse{Valid: true, User: user})
}

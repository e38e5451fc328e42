package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
)

// writeError maps service sentinel errors onto HTTP statuses. Duplicate-email
// conflicts come back as 400 rather than 409; the admin UI relies on that.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errDetail(err)})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: errDetail(err)})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: errDetail(err)})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal server error"})
	}
}

// errDetail strips the sentinel prefix from a wrapped error, leaving the
// human-readable part ("invalid input: name required" -> "name required").
func errDetail(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok {
		return detail
	}
	return msg
}

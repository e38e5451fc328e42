package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
)

// DirectoryHandler exposes one Directory service over HTTP. Links, services,
// and members each get an instance; the JSON payload is the entity itself.
type DirectoryHandler[T any] struct {
	svc *service.Directory[T]
}

func NewDirectoryHandler[T any](svc *service.Directory[T]) *DirectoryHandler[T] {
	return &DirectoryHandler[T]{svc: svc}
}

func (h *DirectoryHandler[T]) List(c *gin.Context) {
	records, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *DirectoryHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	created, err := h.svc.Create(item)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DirectoryHandler[T]) Update(c *gin.Context) {
	var patch T
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	updated, err := h.svc.Update(c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DirectoryHandler[T]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: h.svc.Label() + " deleted"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/model"
	"github.com/canya/backend/internal/service"
)

// PublicHandler serves the unauthenticated read-only listings for the site.
type PublicHandler struct {
	links    *service.Directory[model.Link]
	services *service.Directory[model.Service]
	members  *service.Directory[model.Member]
}

func NewPublicHandler(links *service.Directory[model.Link], services *service.Directory[model.Service], members *service.Directory[model.Member]) *PublicHandler {
	return &PublicHandler{links: links, services: services, members: members}
}

func (h *PublicHandler) Links(c *gin.Context) {
	records, err := h.links.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *PublicHandler) Services(c *gin.Context) {
	records, err := h.services.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *PublicHandler) Members(c *gin.Context) {
	records, err := h.members.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

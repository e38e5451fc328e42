package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/canya/backend/internal/config"
	"github.com/canya/backend/internal/model"
)

// FlagsHandler hands the LaunchDarkly client-side ID to the browser, which
// runs the flag SDK itself. Flag evaluation never happens server-side.
type FlagsHandler struct {
	cfg config.FlagsConfig
}

func NewFlagsHandler(cfg config.FlagsConfig) *FlagsHandler {
	return &FlagsHandler{cfg: cfg}
}

func (h *FlagsHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, model.FlagsConfigResponse{ClientSideID: h.cfg.ClientSideID})
}

// File: internal/account/handler.go

// Package account relays the caller's Facebook profile and managed pages.
package account

import (
	"net/http"

	"page_insights_backend/internal/common"
	"page_insights_backend/internal/graph"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for the profile and pages handlers.
type Handler struct {
	graph  graph.API
	logger *zap.Logger
}

// NewHandler creates a new account handler.
func NewHandler(api graph.API, logger *zap.Logger) *Handler {
	return &Handler{graph: api, logger: logger.Named("AccountHandler")}
}

// RegisterRoutes sets up the profile and pages routes.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/profile", h.profile)
	router.GET("/pages", h.pages)
}

// The token is forwarded as-is; a missing or malformed one surfaces as an upstream error.
func (h *Handler) profile(c *gin.Context) {
	body, err := h.graph.Profile(c.Request.Context(), c.Query("access_token"))
	if err != nil {
		h.logger.Error("Error fetching user profile", zap.Error(err))
		common.RespondText(c, http.StatusInternalServerError, "Error fetching user profile", err)
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", body)
}

func (h *Handler) pages(c *gin.Context) {
	body, err := h.graph.Pages(c.Request.Context(), c.Query("access_token"))
	if err != nil {
		h.logger.Error("Error fetching user pages", zap.Error(err))
		common.RespondText(c, http.StatusInternalServerError, "Error fetching user pages", err)
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", body)
}

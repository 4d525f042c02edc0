// File: internal/insights/handler.go
package insights

import (
	"errors"
	"net/http"

	"page_insights_backend/internal/common"
	"page_insights_backend/internal/graph"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for the insights handler.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new insights handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger.Named("InsightsHandler")}
}

// RegisterRoutes sets up the insights route.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/page-insights", h.pageInsights)
}

func (h *Handler) pageInsights(c *gin.Context) {
	var req Request
	if err := c.ShouldBindQuery(&req); err != nil {
		common.RespondWithError(c, common.BindError(err))
		return
	}

	res := h.service.Fetch(c.Request.Context(), req)
	switch res.Outcome {
	case PrimarySucceeded:
		c.JSON(http.StatusOK, Response{Source: SourceInsightsAPI, Data: res.Data})
	case FallbackSucceeded:
		c.JSON(http.StatusOK, Response{Source: SourceBasicStats, Note: FallbackNote, Data: res.Data})
	default:
		// Only the primary failure is reported, even when the fallback error is the more telling one.
		_ = c.Error(res.FallbackErr).SetType(gin.ErrorTypePrivate)
		_ = c.Error(res.PrimaryErr).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.UpstreamFailure{
			Error:   true,
			Message: errorMessage(res.PrimaryErr),
		})
	}
}

// errorMessage prefers the upstream error.message over the transport error text.
func errorMessage(err error) string {
	var gerr *graph.Error
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	return err.Error()
}

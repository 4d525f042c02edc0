// File: internal/auth/handler.go
package auth

import (
	"net/http"
	"net/url"

	"page_insights_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	oauthService OAuthService
	logger       *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(oauthService OAuthService, logger *zap.Logger) *Handler {
	return &Handler{
		oauthService: oauthService,
		logger:       logger.Named("AuthHandler"),
	}
}

// RegisterRoutes sets up the Facebook login routes.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	fb := router.Group("/auth/facebook")
	{
		fb.GET("", h.facebookLogin)
		fb.GET("/callback", h.facebookCallback)
	}
}

func (h *Handler) facebookLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.oauthService.LoginURL())
}

// facebookCallback exchanges the code and sends the browser back to the app
// root with the access token in the query string.
func (h *Handler) facebookCallback(c *gin.Context) {
	accessToken, err := h.oauthService.ExchangeCode(c.Request.Context(), c.Query("code"))
	if err != nil {
		h.logger.Error("Error getting access token", zap.Error(err))
		common.RespondText(c, http.StatusInternalServerError, "Error during Facebook OAuth", err)
		return
	}
	c.Redirect(http.StatusFound, "/?access_token="+url.QueryEscape(accessToken))
}

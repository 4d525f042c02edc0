// File: internal/user/handler.go
package user

import (
	"errors"
	"io"
	"net/http"

	"page_insights_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for user handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("UserHandler"),
	}
}

// RegisterRoutes sets up the routes for user operations.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	userGroup := router.Group("/api/users")
	{
		userGroup.POST("", h.createUser)
		userGroup.GET("", h.listUsers)
		userGroup.PUT("/:id", h.updateUser)
	}
}

func (h *Handler) createUser(c *gin.Context) {
	var req CreateUserRequest
	if !h.bindBody(c, &req) {
		return
	}
	usr, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		common.RespondFailure(c, http.StatusInternalServerError, "Error creating user", err)
		return
	}
	common.RespondMessage(c, http.StatusCreated, "User created successfully", usr)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		common.RespondFailure(c, http.StatusInternalServerError, "Error fetching users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !h.bindBody(c, &req) {
		return
	}
	usr, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, common.MessageResponse{Message: "User not found"})
			return
		}
		common.RespondFailure(c, http.StatusInternalServerError, "Error updating user", err)
		return
	}
	common.RespondMessage(c, http.StatusOK, "User updated successfully", usr)
}

// bindBody decodes the JSON body into dst. An empty body counts as {}.
func (h *Handler) bindBody(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid user request body", zap.Error(err))
		common.RespondWithError(c, common.BindError(err))
		return false
	}
	return true
}

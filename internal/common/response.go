// File: internal/common/response.go
package common

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the envelope used by the user endpoints.
type MessageResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user,omitempty"`
}

// FailureResponse is the envelope used when a persistence call fails.
type FailureResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// UpstreamFailure is the JSON body returned when a Graph API call fails.
type UpstreamFailure struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// RespondWithError sends a JSON error response.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		apiErr = ErrInternalServer.WithDetails(err.Error())
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondMessage sends {message, user}.
func RespondMessage(c *gin.Context, statusCode int, message string, user interface{}) {
	c.JSON(statusCode, MessageResponse{Message: message, User: user})
}

// RespondFailure sends {message, error} and records err on the context for the request logger.
func RespondFailure(c *gin.Context, statusCode int, message string, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.AbortWithStatusJSON(statusCode, FailureResponse{Message: message, Error: err.Error()})
}

// RespondText sends a plain text body and records err on the context.
func RespondText(c *gin.Context, statusCode int, body string, err error) {
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}
	c.Abort()
	c.String(statusCode, body)
}

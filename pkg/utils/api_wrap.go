package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON writes body as-is. The web client reads the raw provider shapes,
// so successful responses are not wrapped in APIResponse.
func RespondJSON(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// StatusClientClosedRequest is reported when the caller went away before the
// handler finished. Nothing reads the body.
const StatusClientClosedRequest = 499

func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	var upstreamErr *UpstreamError

	switch {
	case errors.Is(err, context.Canceled):
		log.Debug("request cancelled by client", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatus(StatusClientClosedRequest)
	case errors.Is(err, ErrUnknownInterest), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidOAuthState):
		RespondError(c, http.StatusBadRequest, "Invalid or expired login state")
	case errors.Is(err, ErrUnsupportedImageFormat):
		RespondError(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, ErrImageTooLarge):
		RespondError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, ErrUpstreamTimeout):
		log.Warn("upstream timeout", zap.String("path", c.FullPath()), zap.Error(err))
		RespondError(c, http.StatusGatewayTimeout, "Upstream service timed out")
	case errors.As(err, &upstreamErr):
		log.Error("upstream failure",
			zap.String("provider", upstreamErr.Provider),
			zap.Int("upstream_status", upstreamErr.StatusCode),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusBadGateway, upstreamErr.Provider+": "+upstreamErr.Message)
	default:
		log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// BindingMessage turns a gin binding error into a short client-facing message.
func BindingMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "\n"); i > 0 {
		msg = msg[:i]
	}
	return "Invalid request format: " + msg
}

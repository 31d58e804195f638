package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/service"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func abortWithStatus(c *gin.Context, status int) {
	msg, ok := statusMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Success: false,
		Error:   status,
		Message: msg,
	})
}

// fail maps service errors to HTTP statuses; unexpected errors are logged as 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.logger.Debug("resource not found", zap.String("path", c.Request.URL.Path), zap.Error(err))
		abortWithStatus(c, http.StatusNotFound)
	case errors.Is(err, service.ErrUnprocessable):
		h.logger.Debug("unprocessable request", zap.String("path", c.Request.URL.Path), zap.Error(err))
		abortWithStatus(c, http.StatusUnprocessableEntity)
	default:
		h.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		abortWithStatus(c, http.StatusInternalServerError)
	}
}

func notFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func methodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

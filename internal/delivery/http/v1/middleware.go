package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDCtxKey = "request_id"
	requestIDHeader = "X-Request-ID"
)

func (h *handlerImpl) HandleRequestLogger(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)

	c.Next()

	status := c.Writer.Status()
	event := h.logger.Info()
	if status >= 500 {
		event = h.logger.Error()
	} else if status >= 400 {
		event = h.logger.Warn()
	}
	event.
		Str("request_id", requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Msg("handled request")
}

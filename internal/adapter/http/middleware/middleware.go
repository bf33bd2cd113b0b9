package middleware

import (
	"net/http"
	"time"

	"github.com/topkorzone/sellsync-sub002/pkg/apperror"
	"github.com/topkorzone/sellsync-sub002/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for tenant resolution and trace propagation
	HeaderTenantID = "X-Tenant-ID"
	HeaderTraceID  = "X-Trace-ID"

	// Context keys
	CtxTenantID = "tenant_id"
	CtxTraceID  = "trace_id"
)

// TenantResolver creates a middleware that resolves the calling tenant from
// the X-Tenant-ID header. Requests without a valid tenant UUID are rejected.
func TenantResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderTenantID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing X-Tenant-ID header"))
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("X-Tenant-ID must be a UUID"))
			c.Abort()
			return
		}

		c.Set(CtxTenantID, tenantID)
		c.Next()
	}
}

// TraceID creates a middleware that propagates the caller's X-Trace-ID or
// generates one when absent. The trace id is echoed back on the response.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderTraceID)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set(CtxTraceID, traceID)
		// The response envelope reports the trace id as its request id.
		c.Set("request_id", traceID)
		c.Header(HeaderTraceID, traceID)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("trace_id", c.GetString(CtxTraceID)).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

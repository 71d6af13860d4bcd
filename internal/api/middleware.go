package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rshade/canteenco2/internal/logging"
)

// TraceHeader carries the request trace ID in and out.
const TraceHeader = "X-Trace-ID"

// requestLogger attaches a trace ID and the logger to each request context
// and logs the request once it completes.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := c.Request.Context()
		if id := c.GetHeader(TraceHeader); id != "" {
			ctx = logging.ContextWithTraceID(ctx, id)
		}
		traceID := logging.GetOrGenerateTraceID(ctx)
		ctx = logging.ContextWithTraceID(ctx, traceID)
		ctx = logger.WithContext(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)

		c.Next()

		status := c.Writer.Status()
		ev := logger.Info()
		if status >= 500 { //nolint:mnd // server errors
			ev = logger.Error()
		}
		ev.Ctx(ctx).
			Str("operation", "http_request").
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	}
}

package middleware

import (
	"github.com/cruisehub/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Tracing returns the OpenTelemetry middleware for gin. Spans are only
// exported when the tracer provider is enabled; otherwise this is a
// cheap no-op passthrough.
func Tracing(tp *telemetry.TracerProvider) gin.HandlerFunc {
	if tp == nil || !tp.IsEnabled() {
		return func(c *gin.Context) { c.Next() }
	}
	return otelgin.Middleware(telemetry.TracerName)
}

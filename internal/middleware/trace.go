package middleware

import (
	"time"

	"eduintel/business/recommendation"
	"eduintel/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

// Trace reuses or assigns a request id, stores it in the request context
// and logs one line per request.
func Trace() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			traceID := req.Header.Get(HeaderRequestID)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.SetRequest(req.WithContext(recommendation.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(HeaderRequestID, traceID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				"trace_id", traceID,
				"method", req.Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

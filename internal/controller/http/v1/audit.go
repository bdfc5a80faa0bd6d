package httpv1

import (
	"strconv"

	logginghelper "github.com/Egor213/dblogger/internal/controller/common/logging"
	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	AuditGroup      = "admin"
	AuditMessage    = "{method} {path} -> {status}"
	RequestIDHeader = "X-Request-ID"
	requestIDColumn = "_request_id"
)

// CountRequests increments the HTTP request counter once the response status is known.
func CountRequests(cnt *metrics.Counters) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			cnt.HTTPRequests.Inc(c.Request().Method, strconv.Itoa(c.Response().Status))
			return nil
		}
	}
}

// Audit records every request in the log table through logger, bound to
// the request's client address and actor. Failing to record never fails the request.
func Audit(logger service.Logger, actorHeader string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Response().Header().Set(RequestIDHeader, requestID)

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			logCtx := domain.Context{
				"method":             req.Method,
				"path":               req.URL.Path,
				"status":             c.Response().Status,
				service.ContextGroup: AuditGroup,
				requestIDColumn:      requestID,
			}

			env := environment.FromRequest(req, actorHeader)
			if err := logger.WithEnvironment(env).Info(req.Context(), AuditMessage, logCtx); err != nil {
				logginghelper.LogAuditError(req.Method, req.URL.Path, err)
			}
			return nil
		}
	}
}

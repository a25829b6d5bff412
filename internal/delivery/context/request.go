// Package context carries per-request values (request ID, authenticated
// employee, scoped logger) between echo middleware, handlers and usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID  ContextKey = "request_id"
	KeyEmployeeID ContextKey = "employee_id"
	KeyRoles      ContextKey = "roles"
	KeyLogger     ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID set by the request ID middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID stores the request ID on the echo context and the request
// context, and scopes the request logger to it.
func SetRequestID(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	ctx = WithLogger(ctx, base.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// SetEmployee records the authenticated employee. Log lines written through the
// request logger afterwards carry the employee ID.
func SetEmployee(c echo.Context, employeeID uuid.UUID, roles []string) {
	c.Set(string(KeyEmployeeID), employeeID)
	c.Set(string(KeyRoles), roles)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("employee_id", employeeID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetEmployeeID returns the authenticated employee's ID.
func GetEmployeeID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyEmployeeID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the authenticated employee's roles.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

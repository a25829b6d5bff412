package context

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSetEmployee(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	employeeID := uuid.New()

	SetRequestID(c, "req-7", base)
	SetEmployee(c, employeeID, []string{"trainer"})

	got, ok := GetEmployeeID(c)
	assert.True(t, ok)
	assert.Equal(t, employeeID, got)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"trainer"}, roles)

	GetLoggerOrDefault(c.Request().Context(), nil).Info("renewed")
	assert.Contains(t, buf.String(), "request_id=req-7")
	assert.Contains(t, buf.String(), "employee_id="+employeeID.String())
}

func TestContextDefaults(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	fallback := slog.Default()

	assert.Empty(t, GetRequestID(c))
	_, ok := GetEmployeeID(c)
	assert.False(t, ok)
	assert.Same(t, fallback, GetLoggerOrDefault(c.Request().Context(), fallback))
}

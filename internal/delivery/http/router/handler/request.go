package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "gymdesk/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayouts are accepted for date fields in request bodies and queries.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses an optional date. A blank value yields nil.
func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, domainerrors.ErrInvalidInput.WithDetails(field + " must be a date (YYYY-MM-DD)")
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("invalid " + name)
	}

	return id, nil
}

func optionalUUID(field, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid " + field)
	}

	return &id, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithDetails(name + " must be a number")
	}

	return v, nil
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))

	return v
}

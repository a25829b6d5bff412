package handler

import (
	"log/slog"
	"net/http"

	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// ReminderHandler runs the expiry reminder job on demand.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// TriggerReminders sends expiry reminders now. A run already in progress elsewhere yields 409.
func (h *ReminderHandler) TriggerReminders(c echo.Context) error {
	report, err := h.reminderUC.SendExpiryReminders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Reminders sent")
}

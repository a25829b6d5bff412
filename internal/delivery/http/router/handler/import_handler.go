package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler serves bulk member import.
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// ImportRequest carries spreadsheet rows already converted to header-to-cell maps.
type ImportRequest struct {
	Rows []map[string]any `json:"rows" validate:"required,min=1"`
}

// ImportMembers creates or augments members from the rows
func (h *ImportHandler) ImportMembers(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)

	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.importUC.ImportMembers(c.Request().Context(), req.Rows, employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Import finished")
}

// ValidateImport checks the rows without writing anything
func (h *ImportHandler) ValidateImport(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	validation, err := h.importUC.ValidateImport(c.Request().Context(), req.Rows)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, validation, "")
}

// Template returns the accepted spreadsheet layout
func (h *ImportHandler) Template(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.importUC.Template(), "")
}

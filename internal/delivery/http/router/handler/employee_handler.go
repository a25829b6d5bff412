package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/domain/entity"
	"gymdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
	Logger     *slog.Logger
}

// EmployeeHandler serves login and employee administration.
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: params.EmployeeUC,
		logger:     params.Logger,
	}
}

// LoginRequest represents the request body for employee login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin trainer staff"`
}

// Login handles employee login
func (h *EmployeeHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	out, err := h.employeeUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out, "Login successful")
}

// Me returns the authenticated employee
func (h *EmployeeHandler) Me(c echo.Context) error {
	employeeID, ok := deliverycontext.GetEmployeeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid employee ID in token")
	}

	employee, err := h.employeeUC.GetEmployee(c.Request().Context(), employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, employee, "")
}

// CreateEmployee handles creating a back-office account
func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	employee, err := h.employeeUC.CreateEmployee(c.Request().Context(), &usecase.CreateEmployeeInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee created")
}

// ListEmployees returns every employee
func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	employees, err := h.employeeUC.ListEmployees(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, employees, "")
}

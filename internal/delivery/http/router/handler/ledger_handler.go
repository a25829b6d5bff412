package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.PackageLedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler serves the package lifecycle and payments of a member.
type LedgerHandler struct {
	ledgerUC usecase.PackageLedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// AddPackageRequest represents the request body for selling a package to a member
type AddPackageRequest struct {
	PackageID     string   `json:"packageId" validate:"required,uuid"`
	StartDate     string   `json:"startDate"`
	Discount      *float64 `json:"discount" validate:"omitempty,gte=0"`
	DiscountType  string   `json:"discountType" validate:"omitempty,oneof=flat percentage"`
	AmountPaid    float64  `json:"amountPaid" validate:"gte=0"`
	PaymentMethod string   `json:"paymentMethod"`
	TransactionID string   `json:"transactionId"`
	DueDate       string   `json:"dueDate"`
	IsPrimary     bool     `json:"isPrimary"`
	Notes         string   `json:"notes"`
}

// RenewPackageRequest represents the request body for renewing an instance
type RenewPackageRequest struct {
	PackageID     string   `json:"packageId" validate:"omitempty,uuid"`
	StartDate     string   `json:"startDate"`
	Discount      *float64 `json:"discount" validate:"omitempty,gte=0"`
	DiscountType  string   `json:"discountType" validate:"omitempty,oneof=flat percentage"`
	AmountPaid    float64  `json:"amountPaid" validate:"gte=0"`
	PaymentMethod string   `json:"paymentMethod"`
	TransactionID string   `json:"transactionId"`
	DueDate       string   `json:"dueDate"`
	Notes         string   `json:"notes"`
}

// ExtendPackageRequest represents the request body for extending an instance
type ExtendPackageRequest struct {
	Days          int      `json:"days" validate:"gt=0"`
	Charge        bool     `json:"charge"`
	ChargeAmount  *float64 `json:"chargeAmount" validate:"omitempty,gte=0"`
	Discount      *float64 `json:"discount" validate:"omitempty,gte=0"`
	DiscountType  string   `json:"discountType" validate:"omitempty,oneof=flat percentage"`
	AmountPaid    float64  `json:"amountPaid" validate:"gte=0"`
	PaymentMethod string   `json:"paymentMethod"`
	TransactionID string   `json:"transactionId"`
}

// FreezePackageRequest represents the request body for freezing an instance
type FreezePackageRequest struct {
	Days int `json:"days" validate:"gt=0"`
}

// UpgradePackageRequest represents the request body for replacing an instance
type UpgradePackageRequest struct {
	OldInstanceID string `json:"oldInstanceId" validate:"required,uuid"`
	Action        string `json:"action"`
	AddPackageRequest
}

// ChangeStartDateRequest represents the request body for moving an instance
type ChangeStartDateRequest struct {
	StartDate string `json:"startDate" validate:"required"`
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	InstanceID    string  `json:"instanceId" validate:"omitempty,uuid"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
	PaidAt        string  `json:"paidAt"`
	Notes         string  `json:"notes"`
}

func (r *AddPackageRequest) toInput(recordedBy uuid.UUID) (*usecase.AddPackageInput, error) {
	packageID, err := uuid.Parse(r.PackageID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("invalid packageId")
	}
	startDate, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate("dueDate", r.DueDate)
	if err != nil {
		return nil, err
	}

	return &usecase.AddPackageInput{
		PackageID:     packageID,
		StartDate:     startDate,
		Discount:      r.Discount,
		DiscountType:  entity.DiscountType(r.DiscountType),
		AmountPaid:    r.AmountPaid,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		DueDate:       dueDate,
		IsPrimary:     r.IsPrimary,
		Notes:         r.Notes,
		RecordedBy:    recordedBy,
	}, nil
}

// AddPackage sells a package to a member
func (h *LedgerHandler) AddPackage(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)
	memberID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddPackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input, err := req.toInput(employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.ledgerUC.AddPackage(c.Request().Context(), memberID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Package added")
}

// RenewPackage appends a renewal after an instance
func (h *LedgerHandler) RenewPackage(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)
	memberID, instanceID, err := memberAndInstance(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RenewPackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid renewal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.RenewPackageInput{
		Discount:      req.Discount,
		DiscountType:  entity.DiscountType(req.DiscountType),
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		RecordedBy:    employeeID,
	}
	if input.PackageID, err = optionalUUID("packageId", req.PackageID); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.StartDate, err = parseDate("startDate", req.StartDate); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.DueDate, err = parseDate("dueDate", req.DueDate); err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.ledgerUC.RenewPackage(c.Request().Context(), memberID, instanceID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Package renewed")
}

// ExtendPackage pushes an instance's end date
func (h *LedgerHandler) ExtendPackage(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)
	memberID, instanceID, err := memberAndInstance(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ExtendPackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid extension input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	member, err := h.ledgerUC.ExtendPackage(c.Request().Context(), memberID, instanceID, &usecase.ExtendPackageInput{
		Days:          req.Days,
		Charge:        req.Charge,
		ChargeAmount:  req.ChargeAmount,
		Discount:      req.Discount,
		DiscountType:  entity.DiscountType(req.DiscountType),
		AmountPaid:    req.AmountPaid,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		RecordedBy:    employeeID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Package extended")
}

// FreezePackage pauses an instance for a number of days
func (h *LedgerHandler) FreezePackage(c echo.Context) error {
	memberID, instanceID, err := memberAndInstance(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req FreezePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid freeze input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	member, err := h.ledgerUC.FreezePackage(c.Request().Context(), memberID, instanceID, req.Days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Package frozen")
}

// UpgradePackage replaces an instance with a new package
func (h *LedgerHandler) UpgradePackage(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)
	memberID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpgradePackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upgrade input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	oldInstanceID, err := uuid.Parse(req.OldInstanceID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid oldInstanceId"))
	}
	pkg, err := req.AddPackageRequest.toInput(employeeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.ledgerUC.UpgradePackage(c.Request().Context(), memberID, &usecase.UpgradePackageInput{
		OldInstanceID: oldInstanceID,
		Action:        req.Action,
		Package:       *pkg,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Package upgraded")
}

// ExpirePackage marks an instance expired
func (h *LedgerHandler) ExpirePackage(c echo.Context) error {
	return h.setStatus(c, entity.PackageStatusExpired)
}

// CancelPackage marks an instance cancelled
func (h *LedgerHandler) CancelPackage(c echo.Context) error {
	return h.setStatus(c, entity.PackageStatusCancelled)
}

func (h *LedgerHandler) setStatus(c echo.Context, status entity.PackageStatus) error {
	memberID, instanceID, err := memberAndInstance(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.ledgerUC.UpdatePackageStatus(c.Request().Context(), memberID, instanceID, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "")
}

// ChangeStartDate moves an instance and re-derives its end date
func (h *LedgerHandler) ChangeStartDate(c echo.Context) error {
	memberID, instanceID, err := memberAndInstance(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangeStartDateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid start date input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.ledgerUC.ChangePackageStartDate(c.Request().Context(), memberID, instanceID, *startDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Start date changed")
}

// RecordPayment records money against an instance and issues a receipt
func (h *LedgerHandler) RecordPayment(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)
	memberID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.RecordPaymentInput{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		RecordedBy:    employeeID,
	}
	if input.InstanceID, err = optionalUUID("instanceId", req.InstanceID); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.PaidAt, err = parseDate("paidAt", req.PaidAt); err != nil {
		return response.HandleAppError(c, err)
	}

	receipt, err := h.ledgerUC.RecordPayment(c.Request().Context(), memberID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receipt, "Payment recorded")
}

func memberAndInstance(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	memberID, err := pathUUID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	instanceID, err := pathUUID(c, "instanceId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return memberID, instanceID, nil
}

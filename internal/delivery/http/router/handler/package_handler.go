package handler

import (
	"log/slog"
	"net/http"

	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PackageHandlerParams holds dependencies for PackageHandler, injected by Fx.
type PackageHandlerParams struct {
	fx.In

	CatalogUC usecase.PackageCatalogUsecase
	Logger    *slog.Logger
}

// PackageHandler serves the package catalogue.
type PackageHandler struct {
	catalogUC usecase.PackageCatalogUsecase
	logger    *slog.Logger
}

// NewPackageHandler is the constructor for PackageHandler
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// PackageTemplateRequest represents the request body for creating or updating a package
type PackageTemplateRequest struct {
	PackageName   string          `json:"packageName" validate:"required"`
	PackageType   string          `json:"packageType"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Duration      entity.Duration `json:"duration"`
	OriginalPrice float64         `json:"originalPrice" validate:"gte=0"`
	DiscountValue float64         `json:"discountValue" validate:"gte=0"`
	DiscountType  string          `json:"discountType" validate:"omitempty,oneof=flat percentage"`
	Freezable     bool            `json:"freezable"`
	Features      []string        `json:"features"`
	Status        string          `json:"status"`
	IsActive      *bool           `json:"isActive"`
	DisplayOrder  int             `json:"displayOrder"`
}

// QuoteRequest represents the request body for the price evaluator
type QuoteRequest struct {
	Price        float64 `json:"price" validate:"gte=0"`
	Discount     float64 `json:"discount" validate:"gte=0"`
	DiscountType string  `json:"discountType" validate:"omitempty,oneof=flat percentage"`
}

func (r *PackageTemplateRequest) toInput() *usecase.PackageTemplateInput {
	return &usecase.PackageTemplateInput{
		PackageName:   r.PackageName,
		PackageType:   r.PackageType,
		Category:      r.Category,
		Description:   r.Description,
		Duration:      r.Duration,
		OriginalPrice: r.OriginalPrice,
		DiscountValue: r.DiscountValue,
		DiscountType:  entity.DiscountType(r.DiscountType),
		Freezable:     r.Freezable,
		Features:      r.Features,
		Status:        entity.TemplateStatus(r.Status),
		IsActive:      r.IsActive,
		DisplayOrder:  r.DisplayOrder,
	}
}

// ListPackages lists catalogue packages; ?sellable=true hides inactive ones
func (h *PackageHandler) ListPackages(c echo.Context) error {
	templates, err := h.catalogUC.ListPackageTemplates(c.Request().Context(), &usecase.PackageTemplateQuery{
		SellableOnly: queryBool(c, "sellable"),
		PackageType:  c.QueryParam("packageType"),
		Category:     c.QueryParam("category"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, templates, "")
}

// GetPackage returns one package
func (h *PackageHandler) GetPackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tmpl, err := h.catalogUC.GetPackageTemplate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tmpl, "")
}

// CreatePackage adds a package to the catalogue
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req PackageTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	tmpl, err := h.catalogUC.CreatePackageTemplate(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tmpl, "Package created")
}

// UpdatePackage replaces a package's terms
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PackageTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid package input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	tmpl, err := h.catalogUC.UpdatePackageTemplate(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tmpl, "Package updated")
}

// DeletePackage removes a package from the catalogue
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeletePackageTemplate(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Package deleted")
}

// TogglePackage flips a package's active flag
func (h *PackageHandler) TogglePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tmpl, err := h.catalogUC.ToggleActive(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tmpl, "")
}

// Quote evaluates a price and discount
func (h *PackageHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	quote, err := h.catalogUC.Quote(c.Request().Context(), req.Price, req.Discount, entity.DiscountType(req.DiscountType))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// DuplicatePackage copies a package under a new, inactive name
func (h *PackageHandler) DuplicatePackage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tmpl, err := h.catalogUC.DuplicatePackageTemplate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tmpl, "Package duplicated")
}

// DisplayOrderRequest represents the request body for repositioning packages
type DisplayOrderRequest struct {
	Packages []DisplayOrderItem `json:"packages" validate:"required,min=1,dive"`
}

// DisplayOrderItem places one package
type DisplayOrderItem struct {
	ID           string `json:"id" validate:"required"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
}

// UpdateDisplayOrder repositions catalogue packages
func (h *PackageHandler) UpdateDisplayOrder(c echo.Context) error {
	var req DisplayOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid display order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	orders := make([]usecase.DisplayOrder, 0, len(req.Packages))
	for _, p := range req.Packages {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid package id: "+p.ID))
		}
		orders = append(orders, usecase.DisplayOrder{ID: id, DisplayOrder: p.DisplayOrder})
	}

	if err := h.catalogUC.UpdateDisplayOrder(c.Request().Context(), orders); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Display order updated")
}

// ImportPackages creates or updates catalogue packages from spreadsheet rows
func (h *PackageHandler) ImportPackages(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.catalogUC.ImportPackageTemplates(c.Request().Context(), req.Rows)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Import finished")
}

// ImportTemplate describes the accepted package spreadsheet layout
func (h *PackageHandler) ImportTemplate(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ImportTemplate(), "")
}

package handler

import (
	"fmt"
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

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// MemberHandler serves member registration, lookup and administration.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
	}
}

// CreateMemberRequest represents the request body for registering a member
type CreateMemberRequest struct {
	FullName           string             `json:"fullName" validate:"required"`
	PhoneNumber        string             `json:"phoneNumber" validate:"required"`
	Email              string             `json:"email" validate:"omitempty,email"`
	RegistrationNumber string             `json:"registrationNumber"`
	MemberType         string             `json:"memberType" validate:"omitempty,oneof=Regular Visitor"`
	JoiningDate        string             `json:"joiningDate"`
	DateOfBirth        string             `json:"dateOfBirth"`
	Gender             string             `json:"gender"`
	Address            string             `json:"address"`
	Notes              string             `json:"notes"`
	InitialPackage     *AddPackageRequest `json:"initialPackage"`
}

// UpdateMemberRequest represents the request body for changing member identity fields
type UpdateMemberRequest struct {
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Email       *string `json:"email" validate:"omitempty,email"`
	JoiningDate *string `json:"joiningDate"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// ListMembers returns one page of members
func (h *MemberHandler) ListMembers(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.memberUC.ListMembers(c.Request().Context(), &usecase.MemberQuery{
		Page:           page,
		Limit:          limit,
		Status:         entity.MemberStatus(c.QueryParam("status")),
		PackageType:    c.QueryParam("packageType"),
		Search:         c.QueryParam("search"),
		IncludeDeleted: queryBool(c, "includeDeleted"),
		OnlyDeleted:    queryBool(c, "onlyDeleted"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CreateMember registers a member, optionally with a first package
func (h *MemberHandler) CreateMember(c echo.Context) error {
	employeeID, _ := deliverycontext.GetEmployeeID(c)

	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	joiningDate, err := parseDate("joiningDate", req.JoiningDate)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	dateOfBirth, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateMemberInput{
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		RegistrationNumber: req.RegistrationNumber,
		MemberType:         entity.MemberType(req.MemberType),
		JoiningDate:        joiningDate,
		DateOfBirth:        dateOfBirth,
		Gender:             req.Gender,
		Address:            req.Address,
		Notes:              req.Notes,
		RecordedBy:         employeeID,
	}
	if req.InitialPackage != nil {
		pkg, err := req.InitialPackage.toInput(employeeID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.InitialPackage = pkg
	}

	member, err := h.memberUC.CreateMember(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, member, "Member created")
}

// GetMember returns a member with derived state
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.memberUC.GetMember(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "")
}

// GetMemberByRegistrationNumber looks a member up by registration number
func (h *MemberHandler) GetMemberByRegistrationNumber(c echo.Context) error {
	member, err := h.memberUC.GetMemberByRegistrationNumber(c.Request().Context(), c.Param("registrationNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "")
}

// UpdateMember changes identity fields
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.UpdateMemberInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Gender:      req.Gender,
		Address:     req.Address,
		Notes:       req.Notes,
	}
	if req.JoiningDate != nil {
		if input.JoiningDate, err = parseDate("joiningDate", *req.JoiningDate); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	if req.DateOfBirth != nil {
		if input.DateOfBirth, err = parseDate("dateOfBirth", *req.DateOfBirth); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	member, err := h.memberUC.UpdateMember(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Member updated")
}

// DeleteMember soft-deletes a member
func (h *MemberHandler) DeleteMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.memberUC.DeleteMember(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Member deleted")
}

// BulkDeleteRequest represents the request body for deleting several members
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDeleteMembers soft-deletes several members and reports the failures
func (h *MemberHandler) BulkDeleteMembers(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk delete input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid member id: "+raw))
		}
		ids = append(ids, id)
	}

	result, err := h.memberUC.BulkDeleteMembers(c.Request().Context(), ids)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, fmt.Sprintf("%d members deleted", result.DeletedCount))
}

// RestoreMember undoes a soft delete
func (h *MemberHandler) RestoreMember(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.memberUC.RestoreMember(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "Member restored")
}

// SuspendMember sets the suspension override
func (h *MemberHandler) SuspendMember(c echo.Context) error {
	return h.setSuspended(c, true)
}

// ReinstateMember clears the suspension override
func (h *MemberHandler) ReinstateMember(c echo.Context) error {
	return h.setSuspended(c, false)
}

func (h *MemberHandler) setSuspended(c echo.Context, suspended bool) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.memberUC.SetSuspended(c.Request().Context(), id, suspended)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, member, "")
}

// ListExpiringMembers returns members whose active package ends within ?days=
func (h *MemberHandler) ListExpiringMembers(c echo.Context) error {
	days, err := queryInt(c, "days", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	members, err := h.memberUC.ListExpiringMembers(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, members, "")
}

// GetStatistics summarises the member base
func (h *MemberHandler) GetStatistics(c echo.Context) error {
	stats, err := h.memberUC.GetStatistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// GetRevenueReport sums payments received between ?startDate and ?endDate, both included
func (h *MemberHandler) GetRevenueReport(c echo.Context) error {
	from, err := parseDate("startDate", c.QueryParam("startDate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	to, err := parseDate("endDate", c.QueryParam("endDate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if from == nil || to == nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("startDate and endDate are required"))
	}

	report, err := h.memberUC.GetRevenueReport(c.Request().Context(), *from, *to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "")
}

// ListPayments returns the member's payment log
func (h *MemberHandler) ListPayments(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payments, err := h.memberUC.ListPayments(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// GetMemberCard returns the member's check-in QR code as PNG
func (h *MemberHandler) GetMemberCard(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.memberUC.GenerateMemberCard(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

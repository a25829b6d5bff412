package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gymdesk/config"
	deliveryhttp "gymdesk/internal/delivery/http"
	httpmiddleware "gymdesk/internal/delivery/http/middleware"
	"gymdesk/internal/delivery/http/response"
	"gymdesk/internal/delivery/http/router"
	"gymdesk/internal/delivery/http/router/handler"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/service"
	mockSvc "gymdesk/internal/mocks/service"
	mockUC "gymdesk/internal/mocks/usecase"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

type fixtures struct {
	e          *echo.Echo
	tokens     *mockSvc.MockTokenService
	employeeUC *mockUC.MockEmployeeUsecase
	catalogUC  *mockUC.MockPackageCatalogUsecase
	memberUC   *mockUC.MockMemberUsecase
	ledgerUC   *mockUC.MockPackageLedgerUsecase
	importUC   *mockUC.MockImportUsecase
	reminderUC *mockUC.MockReminderUsecase
}

func newFixtures(t *testing.T) *fixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	f := &fixtures{
		e:          deliveryhttp.NewEcho(cfg, logger, httpmiddleware.NewErrorMiddleware(logger)),
		tokens:     mockSvc.NewMockTokenService(t),
		employeeUC: mockUC.NewMockEmployeeUsecase(t),
		catalogUC:  mockUC.NewMockPackageCatalogUsecase(t),
		memberUC:   mockUC.NewMockMemberUsecase(t),
		ledgerUC:   mockUC.NewMockPackageLedgerUsecase(t),
		importUC:   mockUC.NewMockImportUsecase(t),
		reminderUC: mockUC.NewMockReminderUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		EmployeeHandler: handler.NewEmployeeHandler(handler.EmployeeHandlerParams{EmployeeUC: f.employeeUC, Logger: logger}),
		PackageHandler:  handler.NewPackageHandler(handler.PackageHandlerParams{CatalogUC: f.catalogUC, Logger: logger}),
		MemberHandler:   handler.NewMemberHandler(handler.MemberHandlerParams{MemberUC: f.memberUC, Logger: logger}),
		LedgerHandler:   handler.NewLedgerHandler(handler.LedgerHandlerParams{LedgerUC: f.ledgerUC, Logger: logger}),
		ImportHandler:   handler.NewImportHandler(handler.ImportHandlerParams{ImportUC: f.importUC, Logger: logger}),
		ReminderHandler: handler.NewReminderHandler(handler.ReminderHandlerParams{ReminderUC: f.reminderUC, Logger: logger}),
		AuthMiddleware:  httpmiddleware.NewAuthMiddleware(f.tokens),
	}).RegisterRoutes(f.e)

	return f
}

// loginAs makes token resolve to an employee holding role.
func (f *fixtures) loginAs(token string, role entity.Role) uuid.UUID {
	id := uuid.New()
	f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{
		EmployeeID: id,
		Roles:      []string{role.String()},
		ExpiresAt:  time.Now().Add(time.Hour),
	}, nil).Maybe()

	return id
}

func (f *fixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("health needs no token", func(t *testing.T) {
		f := newFixtures(t)

		rec, env := f.do(t, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newFixtures(t)

		rec, env := f.do(t, http.MethodGet, "/api/members", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newFixtures(t)
		f.tokens.EXPECT().ValidateToken("stale").Return(nil, assert.AnError).Once()

		rec, env := f.do(t, http.MethodGet, "/api/members", "stale", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("staff cannot delete members", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)

		rec, env := f.do(t, http.MethodDelete, "/api/members/"+uuid.NewString(), "staff-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("login is public and validated", func(t *testing.T) {
		f := newFixtures(t)

		rec, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"not-an-email","password":"x"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "email must be a valid email")
	})

	t.Run("login issues a token", func(t *testing.T) {
		f := newFixtures(t)
		f.employeeUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "desk@irontemple.in", Password: "s3cret-pass"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt"}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"desk@irontemple.in","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"accessToken":"jwt"`)
	})
}

func TestRouter_Members(t *testing.T) {
	t.Run("create records the employee and parses the first package", func(t *testing.T) {
		f := newFixtures(t)
		employeeID := f.loginAs("staff-token", entity.RoleStaff)
		packageID := uuid.New()

		f.memberUC.EXPECT().CreateMember(mock.Anything, mock.MatchedBy(func(in *usecase.CreateMemberInput) bool {
			return in.RecordedBy == employeeID &&
				in.FullName == "Asha Rao" &&
				in.JoiningDate != nil &&
				in.JoiningDate.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
				in.InitialPackage != nil &&
				in.InitialPackage.PackageID == packageID &&
				in.InitialPackage.AmountPaid == 500 &&
				in.InitialPackage.RecordedBy == employeeID
		})).Return(&entity.Member{ID: uuid.New(), RegistrationNumber: "FLM1001"}, nil).Once()

		body := `{"fullName":"Asha Rao","phoneNumber":"9876543210","joiningDate":"2026-03-01",
			"initialPackage":{"packageId":"` + packageID.String() + `","amountPaid":500,"paymentMethod":"UPI"}}`
		rec, env := f.do(t, http.MethodPost, "/api/members", "staff-token", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"registrationNumber":"FLM1001"`)
	})

	t.Run("bad date is rejected before the usecase", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)

		rec, env := f.do(t, http.MethodPost, "/api/members", "staff-token", `{"fullName":"Asha","phoneNumber":"1","joiningDate":"yesterday"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("list maps the query", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		f.memberUC.EXPECT().ListMembers(mock.Anything, &usecase.MemberQuery{
			Page:           2,
			Limit:          20,
			Status:         entity.MemberStatusActive,
			Search:         "asha",
			IncludeDeleted: true,
		}).Return(&usecase.MemberPage{Page: 2, Limit: 20}, nil).Once()

		rec, _ := f.do(t, http.MethodGet, "/api/members?page=2&limit=20&status=Active&search=asha&includeDeleted=true", "staff-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("static routes win over the id route", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		f.memberUC.EXPECT().ListExpiringMembers(mock.Anything, 3).Return([]*entity.Member{}, nil).Once()

		rec, _ := f.do(t, http.MethodGet, "/api/members/expiring?days=3", "staff-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		id := uuid.New()
		f.memberUC.EXPECT().GetMember(mock.Anything, id).Return(nil, domainerrors.ErrMemberNotFound).Once()

		rec, env := f.do(t, http.MethodGet, "/api/members/"+id.String(), "staff-token", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.ErrMemberNotFound.ErrorCode(), env.Error.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)

		rec, _ := f.do(t, http.MethodGet, "/api/members/42", "staff-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("membership card is a png", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		id := uuid.New()
		f.memberUC.EXPECT().GenerateMemberCard(mock.Anything, id).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

		rec, _ := f.do(t, http.MethodGet, "/api/members/"+id.String()+"/card", "staff-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("unclassified failure is a generic 500", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		f.memberUC.EXPECT().GetStatistics(mock.Anything).Return(nil, assert.AnError).Once()

		rec, env := f.do(t, http.MethodGet, "/api/members/statistics", "admin-token", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestRouter_Ledger(t *testing.T) {
	t.Run("payment larger than the balance", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		memberID := uuid.New()
		f.ledgerUC.EXPECT().RecordPayment(mock.Anything, memberID, mock.MatchedBy(func(in *usecase.RecordPaymentInput) bool {
			return in.InstanceID == nil && in.Amount == 900 && in.PaymentMethod == "Card"
		})).Return(nil, domainerrors.ErrPaymentExceedsBalance.WithDetails("outstanding 500.00")).Once()

		rec, env := f.do(t, http.MethodPost, "/api/members/"+memberID.String()+"/payments", "staff-token", `{"amount":900,"paymentMethod":"Card"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PAYMENT_EXCEEDS_BALANCE", env.Error.Code)
		assert.Equal(t, "outstanding 500.00", env.Error.Details)
	})

	t.Run("zero payment fails validation", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)

		rec, env := f.do(t, http.MethodPost, "/api/members/"+uuid.NewString()+"/payments", "staff-token", `{"amount":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("freeze passes the days through", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("trainer-token", entity.RoleTrainer)
		memberID, instanceID := uuid.New(), uuid.New()
		f.ledgerUC.EXPECT().FreezePackage(mock.Anything, memberID, instanceID, 7).Return(&entity.Member{ID: memberID}, nil).Once()

		rec, _ := f.do(t, http.MethodPatch, "/api/members/"+memberID.String()+"/packages/"+instanceID.String()+"/freeze", "trainer-token", `{"days":7}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("expire is open to staff, cancel is not", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		memberID, instanceID := uuid.New(), uuid.New()
		f.ledgerUC.EXPECT().UpdatePackageStatus(mock.Anything, memberID, instanceID, entity.PackageStatusExpired).
			Return(&entity.Member{ID: memberID}, nil).Once()

		base := "/api/members/" + memberID.String() + "/packages/" + instanceID.String()
		rec, _ := f.do(t, http.MethodPatch, base+"/expire", "staff-token", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, _ = f.do(t, http.MethodPatch, base+"/cancel", "staff-token", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("upgrade reads the embedded package", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)
		memberID, oldID, packageID := uuid.New(), uuid.New(), uuid.New()
		f.ledgerUC.EXPECT().UpgradePackage(mock.Anything, memberID, mock.MatchedBy(func(in *usecase.UpgradePackageInput) bool {
			return in.OldInstanceID == oldID && in.Action == "delete" && in.Package.PackageID == packageID
		})).Return(&entity.Member{ID: memberID}, nil).Once()

		body := `{"oldInstanceId":"` + oldID.String() + `","action":"delete","packageId":"` + packageID.String() + `"}`
		rec, _ := f.do(t, http.MethodPost, "/api/members/"+memberID.String()+"/packages/upgrade", "staff-token", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_AdminJobs(t *testing.T) {
	t.Run("reminder run already in progress", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		f.reminderUC.EXPECT().SendExpiryReminders(mock.Anything).Return(nil, domainerrors.ErrJobAlreadyRunning).Once()

		rec, env := f.do(t, http.MethodPost, "/api/members/reminders/trigger", "admin-token", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "JOB_ALREADY_RUNNING", env.Error.Code)
	})

	t.Run("import passes rows and the employee", func(t *testing.T) {
		f := newFixtures(t)
		adminID := f.loginAs("admin-token", entity.RoleAdmin)
		f.importUC.EXPECT().ImportMembers(mock.Anything, mock.MatchedBy(func(rows []map[string]any) bool {
			return len(rows) == 1 && rows[0]["Full Name"] == "Asha Rao"
		}), adminID).Return(&entity.ImportResult{Total: 1}, nil).Once()

		rec, _ := f.do(t, http.MethodPost, "/api/members/import", "admin-token", `{"rows":[{"Full Name":"Asha Rao","Phone":"9876543210"}]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty import is rejected", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)

		rec, _ := f.do(t, http.MethodPost, "/api/members/import", "admin-token", `{"rows":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Catalogue(t *testing.T) {
	t.Run("duplicate is admin only", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("staff-token", entity.RoleStaff)

		rec, _ := f.do(t, http.MethodPost, "/api/packages/"+uuid.NewString()+"/duplicate", "staff-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("duplicate creates a copy", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		id := uuid.New()
		f.catalogUC.EXPECT().DuplicatePackageTemplate(mock.Anything, id).
			Return(&entity.PackageTemplate{ID: uuid.New(), PackageName: "Monthly (Copy)"}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/packages/"+id.String()+"/duplicate", "admin-token", "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"packageName":"Monthly (Copy)"`)
	})

	t.Run("display order is not mistaken for a package id", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		first, second := uuid.New(), uuid.New()
		f.catalogUC.EXPECT().UpdateDisplayOrder(mock.Anything, []usecase.DisplayOrder{
			{ID: first, DisplayOrder: 1},
			{ID: second, DisplayOrder: 2},
		}).Return(nil).Once()

		body := `{"packages":[{"id":"` + first.String() + `","displayOrder":1},{"id":"` + second.String() + `","displayOrder":2}]}`
		rec, _ := f.do(t, http.MethodPut, "/api/packages/display-order", "admin-token", body)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("display order with a malformed id", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)

		rec, env := f.do(t, http.MethodPut, "/api/packages/display-order", "admin-token", `{"packages":[{"id":"42","displayOrder":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("bulk import passes the rows", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		f.catalogUC.EXPECT().ImportPackageTemplates(mock.Anything, mock.MatchedBy(func(rows []map[string]any) bool {
			return len(rows) == 1 && rows[0]["Package Name"] == "Quarterly Gym"
		})).Return(&entity.TemplateImportResult{Total: 1, Summary: entity.ImportSummary{Created: 1}}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/packages/import/bulk", "admin-token", `{"rows":[{"Package Name":"Quarterly Gym","Original Price":9000}]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"created":1`)
	})

	t.Run("import template", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		f.catalogUC.EXPECT().ImportTemplate().Return(&usecase.ImportTemplate{Headers: []string{"Package Name"}}).Once()

		rec, env := f.do(t, http.MethodGet, "/api/packages/import/template", "admin-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"headers":["Package Name"]`)
	})
}

func TestRouter_Reports(t *testing.T) {
	t.Run("revenue report parses the range", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
		f.memberUC.EXPECT().GetRevenueReport(mock.Anything, from, to).
			Return(&entity.RevenueReport{TotalRevenue: 4500, TransactionCount: 2}, nil).Once()

		rec, env := f.do(t, http.MethodGet, "/api/members/reports/revenue?startDate=2026-03-01&endDate=2026-03-31", "admin-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"totalRevenue":4500`)
	})

	t.Run("revenue report needs both dates", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)

		rec, env := f.do(t, http.MethodGet, "/api/members/reports/revenue?startDate=2026-03-01", "admin-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("bulk delete", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("admin-token", entity.RoleAdmin)
		first, second := uuid.New(), uuid.New()
		f.memberUC.EXPECT().BulkDeleteMembers(mock.Anything, []uuid.UUID{first, second}).
			Return(&entity.BulkDeleteResult{Requested: 2, DeletedCount: 2, Failed: []*entity.BulkDeleteFailure{}}, nil).Once()

		body := `{"ids":["` + first.String() + `","` + second.String() + `"]}`
		rec, env := f.do(t, http.MethodPost, "/api/members/bulk-delete", "admin-token", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2 members deleted", env.Message)
	})

	t.Run("bulk delete is admin only", func(t *testing.T) {
		f := newFixtures(t)
		f.loginAs("trainer-token", entity.RoleTrainer)

		rec, _ := f.do(t, http.MethodPost, "/api/members/bulk-delete", "trainer-token", `{"ids":["`+uuid.NewString()+`"]}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

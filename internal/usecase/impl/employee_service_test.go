package impl

import (
	"context"
	"testing"
	"time"

	"gymdesk/config"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	mockRepo "gymdesk/internal/mocks/repository"
	mockSvc "gymdesk/internal/mocks/service"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type employeeFixtures struct {
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	service      usecase.EmployeeUsecase
}

func newEmployeeFixtures(t *testing.T, cfg *config.Config) *employeeFixtures {
	f := &employeeFixtures{
		employeeRepo: mockRepo.NewMockEmployeeRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewEmployeeService(EmployeeServiceParams{
		EmployeeRepo: f.employeeRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return f
}

func newTestEmployee() *entity.Employee {
	return &entity.Employee{
		ID:           uuid.New(),
		FullName:     "Priya Nair",
		Email:        "priya@irontemple.in",
		PasswordHash: "hashed",
		Role:         entity.RoleTrainer,
		IsActive:     true,
	}
}

func TestEmployeeService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		employee := newTestEmployee()
		expiresAt := testNow.Add(time.Hour)

		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, "priya@irontemple.in").Return(employee, nil).Once()
		f.hasher.EXPECT().Check("s3cret-pass", "hashed").Return(true).Once()
		f.tokenService.EXPECT().GenerateAccessToken(employee.ID, []string{"trainer"}).Return("token", expiresAt, nil).Once()

		out, err := f.service.Login(ctx, usecase.LoginInput{Email: " Priya@IronTemple.in ", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, expiresAt, out.ExpiresAt)
		assert.Equal(t, employee, out.Employee)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		employee := newTestEmployee()
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, employee.Email).Return(employee, nil).Once()
		f.hasher.EXPECT().Check("nope", "hashed").Return(false).Once()

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: employee.Email, Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like a wrong password", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, "ghost@irontemple.in").Return(nil, repository.ErrEmployeeNotFound).Once()

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@irontemple.in", Password: "whatever"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		employee := newTestEmployee()
		employee.IsActive = false
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, employee.Email).Return(employee, nil).Once()

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: employee.Email, Password: "s3cret-pass"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to staff", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, "ravi@irontemple.in").Return(nil, repository.ErrEmployeeNotFound).Once()
		f.hasher.EXPECT().Hash("front-desk-1").Return("hashed", nil).Once()
		f.employeeRepo.EXPECT().CreateEmployee(ctx, mock.MatchedBy(func(e *entity.Employee) bool {
			return e.Role == entity.RoleStaff && e.IsActive && e.PasswordHash == "hashed"
		})).Return(nil).Once()

		employee, err := f.service.CreateEmployee(ctx, &usecase.CreateEmployeeInput{
			FullName: " Ravi Kumar ",
			Email:    "Ravi@IronTemple.in",
			Password: "front-desk-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", employee.FullName)
		assert.Equal(t, "ravi@irontemple.in", employee.Email)
	})

	t.Run("email already registered", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		existing := newTestEmployee()
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, existing.Email).Return(existing, nil).Once()

		_, err := f.service.CreateEmployee(ctx, &usecase.CreateEmployeeInput{
			FullName: "Priya",
			Email:    existing.Email,
			Password: "long-enough",
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, mock.Anything).Return(nil, repository.ErrEmployeeNotFound).Once()
		f.hasher.EXPECT().Hash(mock.Anything).Return("", assert.AnError).Once()

		_, err := f.service.CreateEmployee(ctx, &usecase.CreateEmployeeInput{
			FullName: "Ravi",
			Email:    "ravi@irontemple.in",
			Password: "long-enough",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})

	t.Run("rejects bad input before any lookup", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())

		tests := []struct {
			name  string
			input usecase.CreateEmployeeInput
			want  error
		}{
			{"missing name", usecase.CreateEmployeeInput{Email: "a@b.in", Password: "long-enough"}, domainerrors.ErrValidationFailed},
			{"bad email", usecase.CreateEmployeeInput{FullName: "A", Email: "not-an-email", Password: "long-enough"}, domainerrors.ErrValidationFailed},
			{"short password", usecase.CreateEmployeeInput{FullName: "A", Email: "a@b.in", Password: "short"}, domainerrors.ErrValidationFailed},
			{"unknown role", usecase.CreateEmployeeInput{FullName: "A", Email: "a@b.in", Password: "long-enough", Role: "owner"}, domainerrors.ErrInvalidInput},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.service.CreateEmployee(ctx, &tt.input)

				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestEmployeeService_EnsureBootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	withAdmin := func() *config.Config {
		cfg := newTestConfig()
		cfg.Auth.BootstrapAdmin = &config.BootstrapAdminConfig{Email: "owner@irontemple.in", Password: "change-me-now"}

		return cfg
	}

	t.Run("creates the admin on an empty collection", func(t *testing.T) {
		f := newEmployeeFixtures(t, withAdmin())
		f.employeeRepo.EXPECT().CountEmployees(ctx).Return(int64(0), nil).Once()
		f.employeeRepo.EXPECT().FindEmployeeByEmail(ctx, "owner@irontemple.in").Return(nil, repository.ErrEmployeeNotFound).Once()
		f.hasher.EXPECT().Hash("change-me-now").Return("hashed", nil).Once()
		f.employeeRepo.EXPECT().CreateEmployee(ctx, mock.MatchedBy(func(e *entity.Employee) bool {
			return e.Role == entity.RoleAdmin && e.FullName == "Administrator"
		})).Return(nil).Once()

		require.NoError(t, f.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("leaves an existing collection alone", func(t *testing.T) {
		f := newEmployeeFixtures(t, withAdmin())
		f.employeeRepo.EXPECT().CountEmployees(ctx).Return(int64(2), nil).Once()

		require.NoError(t, f.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("nothing configured", func(t *testing.T) {
		f := newEmployeeFixtures(t, newTestConfig())

		require.NoError(t, f.service.EnsureBootstrapAdmin(ctx))
	})
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	ctx := context.Background()
	f := newEmployeeFixtures(t, newTestConfig())
	id := uuid.New()
	f.employeeRepo.EXPECT().FindEmployeeByID(ctx, id).Return(nil, repository.ErrEmployeeNotFound).Once()

	_, err := f.service.GetEmployee(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

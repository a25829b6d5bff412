package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"gymdesk/config"
	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// employeeService implements the EmployeeUsecase interface. Sessions are
// stateless access tokens; nothing about a login is kept server side.
type employeeService struct {
	employeeRepo   repository.EmployeeRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	bootstrapAdmin *config.BootstrapAdminConfig
	logger         *slog.Logger
}

// EmployeeServiceParams holds dependencies for EmployeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	var bootstrap *config.BootstrapAdminConfig
	if params.Config != nil && params.Config.Auth != nil {
		bootstrap = params.Config.Auth.BootstrapAdmin
	}

	return &employeeService{
		employeeRepo:   params.EmployeeRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		bootstrapAdmin: bootstrap,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the employee's credentials and issues an access token.
func (srv *employeeService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	employee, err := srv.employeeRepo.FindEmployeeByEmail(ctx, email)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, mapRepoError(err, "find employee")
	}

	if !employee.IsActive || !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Info("Rejected login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(employee.ID, entity.Roles{employee.Role}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Employee logged in", slog.Any("employeeID", employee.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Employee:    employee,
	}, nil
}

// GetEmployee returns an employee by ID.
func (srv *employeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindEmployeeByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "find employee")
	}

	return employee, nil
}

// ListEmployees returns every employee.
func (srv *employeeService) ListEmployees(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := srv.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, mapRepoError(err, "list employees")
	}

	return employees, nil
}

// CreateEmployee adds a back-office account.
func (srv *employeeService) CreateEmployee(ctx context.Context, input *usecase.CreateEmployeeInput) (*entity.Employee, error) {
	name := strings.TrimSpace(input.FullName)
	email := normalizeEmail(input.Email)

	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleStaff
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown role: " + string(role))
	}

	_, err := srv.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrEmployeeAlreadyExists
	}
	if !errors.Is(err, repository.ErrEmployeeNotFound) {
		return nil, mapRepoError(err, "find employee")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	employee := &entity.Employee{
		ID:           uuid.New(),
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := srv.employeeRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, mapRepoError(err, "create employee")
	}

	srv.log(ctx).Info("Employee created", slog.Any("employeeID", employee.ID), slog.String("role", role.String()))

	return employee, nil
}

// EnsureBootstrapAdmin creates the configured administrator on an empty employee collection.
func (srv *employeeService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrapAdmin == nil || srv.bootstrapAdmin.Email == "" {
		return nil
	}

	count, err := srv.employeeRepo.CountEmployees(ctx)
	if err != nil {
		return mapRepoError(err, "count employees")
	}
	if count > 0 {
		return nil
	}

	fullName := srv.bootstrapAdmin.FullName
	if fullName == "" {
		fullName = "Administrator"
	}

	if _, err := srv.CreateEmployee(ctx, &usecase.CreateEmployeeInput{
		FullName: fullName,
		Email:    srv.bootstrapAdmin.Email,
		Password: srv.bootstrapAdmin.Password,
		Role:     entity.RoleAdmin,
	}); err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.String("email", srv.bootstrapAdmin.Email))

	return nil
}

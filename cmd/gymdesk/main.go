package main

import (
	"context"
	"log/slog"
	"os"

	"gymdesk/config"
	"gymdesk/internal/delivery"
	"gymdesk/internal/delivery/http"
	"gymdesk/internal/delivery/http/middleware"
	"gymdesk/internal/delivery/http/router/handler"
	"gymdesk/internal/delivery/worker"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/infra/auth"
	"gymdesk/internal/infra/lock"
	logs "gymdesk/internal/infra/log"
	"gymdesk/internal/infra/notification"
	"gymdesk/internal/infra/persistence/mongodb"
	"gymdesk/internal/infra/qrcode"
	"gymdesk/internal/usecase"
	"gymdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongodb.New,
		),
		lock.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewMemberRepository,
			mongodb.NewPackageTemplateRepository,
			mongodb.NewEmployeeRepository,
			mongodb.NewRegistrationCounterRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			newLedger,
			impl.NewRegistrationAllocator,
		),
		notification.Module,
	)
}

// newLedger provides the wall-clock ledger shared by every usecase.
func newLedger() *ledger.Ledger {
	return ledger.New()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEmployeeService,
			impl.NewPackageCatalogService,
			impl.NewMemberService,
			impl.NewPackageLedgerService,
			impl.NewImportService,
			impl.NewReminderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEmployeeHandler,
			handler.NewPackageHandler,
			handler.NewMemberHandler,
			handler.NewLedgerHandler,
			handler.NewImportHandler,
			handler.NewReminderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the first admin account on an empty employee collection.
func bootstrapAdmin(lc fx.Lifecycle, employeeUC usecase.EmployeeUsecase) {
	lc.Append(fx.Hook{
		OnStart: employeeUC.EnsureBootstrapAdmin,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package impl

import (
	"context"
	"log/slog"
	"sync"

	"gymdesk/config"
	deliverycontext "gymdesk/internal/delivery/context"
	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"

	"go.uber.org/fx"
)

const maxAllocateAttempts = 5

// registrationAllocator implements service.RegistrationAllocator on top of a
// per-prefix counter document. The counter is seeded once per process from
// the highest number already stored, so a fresh counter never hands out a
// number that predates it.
type registrationAllocator struct {
	memberRepo    repository.MemberRepository
	counterRepo   repository.RegistrationCounterRepository
	regularPrefix string
	visitorPrefix string
	floor         int64
	seeded        sync.Map
	logger        *slog.Logger
}

// RegistrationAllocatorParams holds dependencies for the allocator, injected by Fx.
type RegistrationAllocatorParams struct {
	fx.In

	MemberRepo  repository.MemberRepository
	CounterRepo repository.RegistrationCounterRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRegistrationAllocator creates the registration number allocator.
func NewRegistrationAllocator(params RegistrationAllocatorParams) service.RegistrationAllocator {
	alloc := &registrationAllocator{
		memberRepo:    params.MemberRepo,
		counterRepo:   params.CounterRepo,
		regularPrefix: ledger.PrefixRegular,
		visitorPrefix: ledger.PrefixVisitor,
		floor:         ledger.DefaultRegistrationFloor,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Ledger != nil {
		if params.Config.Ledger.RegularPrefix != "" {
			alloc.regularPrefix = params.Config.Ledger.RegularPrefix
		}
		if params.Config.Ledger.VisitorPrefix != "" {
			alloc.visitorPrefix = params.Config.Ledger.VisitorPrefix
		}
		if params.Config.Ledger.RegistrationFloor > 0 {
			alloc.floor = params.Config.Ledger.RegistrationFloor
		}
	}

	return alloc
}

func (a *registrationAllocator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Allocate returns the requested number when it is free, otherwise the next generated one.
func (a *registrationAllocator) Allocate(ctx context.Context, raw string, memberType entity.MemberType) (string, error) {
	req := ledger.ParseRegistration(raw, memberType, a.regularPrefix, a.visitorPrefix)
	if !req.Auto() {
		return a.claim(ctx, req.Value)
	}

	if err := a.seed(ctx, req.Prefix); err != nil {
		return "", err
	}

	for range maxAllocateAttempts {
		n, err := a.counterRepo.NextRegistrationValue(ctx, req.Prefix)
		if err != nil {
			return "", mapRepoError(err, "increment registration counter")
		}

		candidate := ledger.FormatRegistration(req.Prefix, n)
		taken, err := a.memberRepo.ExistsRegistrationNumber(ctx, candidate)
		if err != nil {
			return "", mapRepoError(err, "check registration number")
		}
		if !taken {
			return candidate, nil
		}

		a.log(ctx).Warn("Generated registration number already taken, advancing", slog.String("registrationNumber", candidate))
	}

	return "", domainerrors.ErrInternalError.WithDetails("could not allocate a registration number for prefix " + req.Prefix)
}

// claim checks an explicit number and keeps the matching counter above it.
func (a *registrationAllocator) claim(ctx context.Context, value string) (string, error) {
	taken, err := a.memberRepo.ExistsRegistrationNumber(ctx, value)
	if err != nil {
		return "", mapRepoError(err, "check registration number")
	}
	if taken {
		return "", domainerrors.ErrDuplicateIdentifier.WithDetails("registration number " + value + " is already taken")
	}

	for _, prefix := range []string{a.regularPrefix, a.visitorPrefix} {
		n, ok := ledger.RegistrationSuffix(prefix, value)
		if !ok {
			continue
		}
		if err := a.seed(ctx, prefix); err != nil {
			return "", err
		}
		if err := a.counterRepo.RaiseRegistrationCounter(ctx, prefix, n); err != nil {
			return "", mapRepoError(err, "raise registration counter")
		}
	}

	return value, nil
}

// seed raises the prefix counter to the highest stored suffix, or the floor.
func (a *registrationAllocator) seed(ctx context.Context, prefix string) error {
	if _, ok := a.seeded.Load(prefix); ok {
		return nil
	}

	highest, err := a.memberRepo.MaxRegistrationSuffix(ctx, prefix)
	if err != nil {
		return mapRepoError(err, "find highest registration number")
	}

	if err := a.counterRepo.RaiseRegistrationCounter(ctx, prefix, max(highest, a.floor)); err != nil {
		return mapRepoError(err, "seed registration counter")
	}
	a.seeded.Store(prefix, struct{}{})

	return nil
}

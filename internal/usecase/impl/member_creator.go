package impl

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
)

// memberCreator inserts new members. The unique index on registration_number
// is the last line of defence against two writers generating the same number,
// so a clash on a generated number allocates again.
type memberCreator struct {
	memberRepo repository.MemberRepository
	allocator  service.RegistrationAllocator
}

func (c *memberCreator) insert(ctx context.Context, member *entity.Member, rawRegistration string) error {
	auto := ledger.ParseRegistration(rawRegistration, member.MemberType, "", "").Auto()

	for attempt := 1; ; attempt++ {
		number, err := c.allocator.Allocate(ctx, rawRegistration, member.MemberType)
		if err != nil {
			return err
		}
		member.RegistrationNumber = number

		err = c.memberRepo.CreateMember(ctx, member)
		if err == nil {
			return nil
		}
		if !auto || !errors.Is(err, repository.ErrDuplicateRegistrationNumber) || attempt >= maxAllocateAttempts {
			return mapRepoError(err, "create member")
		}
	}
}

// ensureIdentifiersFree checks phone and email against live members other than excludeID.
func ensureIdentifiersFree(ctx context.Context, memberRepo repository.MemberRepository, phone, email string, excludeID uuid.UUID) error {
	taken, err := memberRepo.ExistsPhone(ctx, phone, excludeID)
	if err != nil {
		return mapRepoError(err, "check phone number")
	}
	if taken {
		return mapRepoError(repository.ErrDuplicatePhone, "")
	}

	if email == "" {
		return nil
	}

	taken, err = memberRepo.ExistsEmail(ctx, email, excludeID)
	if err != nil {
		return mapRepoError(err, "check email")
	}
	if taken {
		return mapRepoError(repository.ErrDuplicateEmail, "")
	}

	return nil
}

// sendReceipts emails a receipt per payment. Delivery problems never fail the
// operation that took the money.
func sendReceipts(ctx context.Context, sender service.ReceiptSender, logger *slog.Logger, member *entity.Member, payments []*entity.Payment) {
	if sender == nil {
		return
	}

	for _, payment := range payments {
		if err := sender.SendReceipt(ctx, member, payment); err != nil {
			logger.Warn("Failed to send payment receipt",
				slog.Any("memberID", member.ID),
				slog.String("receiptNumber", payment.ReceiptNumber),
				slog.Any("error", err),
			)
		}
	}
}

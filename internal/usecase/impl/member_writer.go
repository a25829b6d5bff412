package impl

import (
	"context"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/errors"

	"github.com/google/uuid"
)

const defaultMaxSaveAttempts = 3

// memberWriter runs read-modify-write cycles on a member document. SaveMember
// only succeeds when the stored version is still the one that was loaded, so
// a conflicting writer makes the whole cycle run again on the fresh document.
type memberWriter struct {
	memberRepo  repository.MemberRepository
	maxAttempts int
}

func newMemberWriter(memberRepo repository.MemberRepository, maxAttempts int) *memberWriter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxSaveAttempts
	}

	return &memberWriter{memberRepo: memberRepo, maxAttempts: maxAttempts}
}

// update applies fn to a live member and saves it.
func (w *memberWriter) update(ctx context.Context, id uuid.UUID, fn func(*entity.Member) error) (*entity.Member, error) {
	return w.mutate(ctx, id, false, fn)
}

// mutate applies fn to the member and saves it. Deleted members are rejected
// unless includeDeleted is set.
func (w *memberWriter) mutate(ctx context.Context, id uuid.UUID, includeDeleted bool, fn func(*entity.Member) error) (*entity.Member, error) {
	for attempt := 1; ; attempt++ {
		member, err := w.memberRepo.FindMemberByID(ctx, id)
		if err != nil {
			return nil, mapRepoError(err, "find member")
		}
		if member.IsDeleted && !includeDeleted {
			return nil, domainerrors.ErrMemberDeleted
		}

		if err := fn(member); err != nil {
			return nil, err
		}

		err = w.memberRepo.SaveMember(ctx, member)
		if err == nil {
			return member, nil
		}
		if !errors.Is(err, repository.ErrMemberVersionConflict) || attempt >= w.maxAttempts {
			return nil, mapRepoError(err, "save member")
		}
	}
}

package impl

import (
	"context"
	"testing"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	mockRepo "gymdesk/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberWriter_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	stored := newTestMember()
	memberRepo := mockRepo.NewMockMemberRepository(t)
	writer := newMemberWriter(memberRepo, 3)

	memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Member, error) {
		return cloneMember(stored), nil
	}).Times(2)
	memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(repository.ErrMemberVersionConflict).Once()
	memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(nil).Once()

	calls := 0
	got, err := writer.update(ctx, stored.ID, func(m *entity.Member) error {
		calls++
		m.Notes = "prefers mornings"
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "prefers mornings", got.Notes)
}

func TestMemberWriter_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	stored := newTestMember()
	memberRepo := mockRepo.NewMockMemberRepository(t)
	writer := newMemberWriter(memberRepo, 3)

	memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Member, error) {
		return cloneMember(stored), nil
	}).Times(3)
	memberRepo.EXPECT().SaveMember(ctx, mock.Anything).Return(repository.ErrMemberVersionConflict).Times(3)

	_, err := writer.update(ctx, stored.ID, func(*entity.Member) error { return nil })

	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
}

func TestMemberWriter_RejectsDeletedMember(t *testing.T) {
	ctx := context.Background()
	stored := newTestMember()
	stored.IsDeleted = true
	memberRepo := mockRepo.NewMockMemberRepository(t)
	writer := newMemberWriter(memberRepo, 0)

	memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()

	_, err := writer.update(ctx, stored.ID, func(*entity.Member) error {
		t.Fatal("mutation must not run on a deleted member")
		return nil
	})

	assert.ErrorIs(t, err, domainerrors.ErrMemberDeleted)
}

func TestMemberWriter_MutationErrorSkipsSave(t *testing.T) {
	ctx := context.Background()
	stored := newTestMember()
	memberRepo := mockRepo.NewMockMemberRepository(t)
	writer := newMemberWriter(memberRepo, 0)

	memberRepo.EXPECT().FindMemberByID(ctx, stored.ID).Return(stored, nil).Once()

	_, err := writer.update(ctx, stored.ID, func(*entity.Member) error {
		return domainerrors.ErrPackageNotFreezable
	})

	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFreezable)
	memberRepo.AssertNotCalled(t, "SaveMember", mock.Anything, mock.Anything)
}

func TestMapRepoError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"member not found", repository.ErrMemberNotFound, domainerrors.ErrMemberNotFound},
		{"version conflict", repository.ErrMemberVersionConflict, domainerrors.ErrConcurrentModification},
		{"duplicate phone", repository.ErrDuplicatePhone, domainerrors.ErrDuplicateIdentifier},
		{"duplicate email", repository.ErrDuplicateEmail, domainerrors.ErrDuplicateIdentifier},
		{"duplicate registration", repository.ErrDuplicateRegistrationNumber, domainerrors.ErrDuplicateIdentifier},
		{"template not found", repository.ErrPackageTemplateNotFound, domainerrors.ErrPackageTemplateNotFound},
		{"employee not found", repository.ErrEmployeeNotFound, domainerrors.ErrEmployeeNotFound},
		{"duplicate employee", repository.ErrDuplicateEmployeeEmail, domainerrors.ErrEmployeeAlreadyExists},
		{"app error passes through", domainerrors.ErrInvalidInput, domainerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRepoError(tt.err, "op"), tt.want)
		})
	}

	assert.NoError(t, mapRepoError(nil, "op"))

	var appErr domainerrors.AppError
	err := mapRepoError(assert.AnError, "load member")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to load member", appErr.Details())
	assert.ErrorIs(t, err, assert.AnError)
}

package impl

import (
	"context"
	"sync"
	"testing"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/service"
	mockRepo "gymdesk/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type allocatorFixtures struct {
	memberRepo  *mockRepo.MockMemberRepository
	counterRepo *mockRepo.MockRegistrationCounterRepository
	allocator   service.RegistrationAllocator
}

func newAllocatorFixtures(t *testing.T) *allocatorFixtures {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	counterRepo := mockRepo.NewMockRegistrationCounterRepository(t)

	return &allocatorFixtures{
		memberRepo:  memberRepo,
		counterRepo: counterRepo,
		allocator: NewRegistrationAllocator(RegistrationAllocatorParams{
			MemberRepo:  memberRepo,
			CounterRepo: counterRepo,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
	}
}

func TestRegistrationAllocator_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("first generated number follows the floor", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "FLM").Return(0, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1000)).Return(nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1001, nil).Once()
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1001").Return(false, nil).Once()

		got, err := f.allocator.Allocate(ctx, "", entity.MemberTypeRegular)

		require.NoError(t, err)
		assert.Equal(t, "FLM1001", got)
	})

	t.Run("counter is seeded from the highest stored number once", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "FLM").Return(1042, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1042)).Return(nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1043, nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1044, nil).Once()
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, mock.Anything).Return(false, nil).Times(2)

		first, err := f.allocator.Allocate(ctx, "N/A", entity.MemberTypeRegular)
		require.NoError(t, err)
		second, err := f.allocator.Allocate(ctx, "", entity.MemberTypeRegular)
		require.NoError(t, err)

		assert.Equal(t, "FLM1043", first)
		assert.Equal(t, "FLM1044", second)
	})

	t.Run("visitors draw from their own prefix", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "VIS").Return(0, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "VIS", int64(1000)).Return(nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "VIS").Return(1001, nil).Once()
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "VIS1001").Return(false, nil).Once()

		got, err := f.allocator.Allocate(ctx, "Visitor", entity.MemberTypeRegular)

		require.NoError(t, err)
		assert.Equal(t, "VIS1001", got)
	})

	t.Run("generated number already held is skipped", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "FLM").Return(0, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1000)).Return(nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1001, nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1002, nil).Once()
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1001").Return(true, nil).Once()
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1002").Return(false, nil).Once()

		got, err := f.allocator.Allocate(ctx, "", entity.MemberTypeRegular)

		require.NoError(t, err)
		assert.Equal(t, "FLM1002", got)
	})

	t.Run("explicit free number raises the counter above it", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1200").Return(false, nil).Once()
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "FLM").Return(1010, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1010)).Return(nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1200)).Return(nil).Once()

		got, err := f.allocator.Allocate(ctx, "flm1200", entity.MemberTypeRegular)

		require.NoError(t, err)
		assert.Equal(t, "FLM1200", got)
	})

	t.Run("explicit legacy number leaves counters alone", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "GYM-77").Return(false, nil).Once()

		got, err := f.allocator.Allocate(ctx, "GYM-77", entity.MemberTypeRegular)

		require.NoError(t, err)
		assert.Equal(t, "GYM-77", got)
	})

	t.Run("explicit taken number is a duplicate", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1001").Return(true, nil).Once()

		_, err := f.allocator.Allocate(ctx, "FLM1001", entity.MemberTypeRegular)

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
	})

	t.Run("gives up when every candidate is taken", func(t *testing.T) {
		f := newAllocatorFixtures(t)
		f.memberRepo.EXPECT().MaxRegistrationSuffix(ctx, "FLM").Return(0, nil).Once()
		f.counterRepo.EXPECT().RaiseRegistrationCounter(ctx, "FLM", int64(1000)).Return(nil).Once()
		f.counterRepo.EXPECT().NextRegistrationValue(ctx, "FLM").Return(1001, nil).Times(maxAllocateAttempts)
		f.memberRepo.EXPECT().ExistsRegistrationNumber(ctx, "FLM1001").Return(true, nil).Times(maxAllocateAttempts)

		_, err := f.allocator.Allocate(ctx, "", entity.MemberTypeRegular)

		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

// memoryCounter is an atomic counter store shared by concurrent allocations.
type memoryCounter struct {
	mu     sync.Mutex
	values map[string]int64
}

func (c *memoryCounter) NextRegistrationValue(_ context.Context, prefix string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[prefix]++

	return c.values[prefix], nil
}

func (c *memoryCounter) RaiseRegistrationCounter(_ context.Context, prefix string, value int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value > c.values[prefix] {
		c.values[prefix] = value
	}

	return nil
}

func TestRegistrationAllocator_ConcurrentAllocationsAreDistinct(t *testing.T) {
	const workers = 50

	memberRepo := mockRepo.NewMockMemberRepository(t)
	memberRepo.EXPECT().MaxRegistrationSuffix(mock.Anything, "FLM").Return(0, nil)
	memberRepo.EXPECT().ExistsRegistrationNumber(mock.Anything, mock.Anything).Return(false, nil)

	allocator := NewRegistrationAllocator(RegistrationAllocatorParams{
		MemberRepo:  memberRepo,
		CounterRepo: &memoryCounter{values: map[string]int64{}},
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	results := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := allocator.Allocate(context.Background(), "", entity.MemberTypeRegular)
			assert.NoError(t, err)
			results[i] = number
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, workers)
	for _, number := range results {
		_, dup := seen[number]
		assert.False(t, dup, "registration number %s handed out twice", number)
		seen[number] = struct{}{}
	}
	assert.Len(t, seen, workers)
	assert.Contains(t, seen, "FLM1001")
	assert.Contains(t, seen, "FLM1050")
}

package ledger

import (
	"testing"
	"time"

	"gymdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func instance(start, end time.Time, amount, paid float64) *entity.PackageInstance {
	return &entity.PackageInstance{
		ID:           uuid.New(),
		PackageID:    uuid.New(),
		PackageName:  "Monthly",
		Duration:     entity.Duration{Value: 1, Unit: entity.DurationUnitMonths},
		StartDate:    start,
		EndDate:      end,
		Amount:       amount,
		DiscountType: entity.DiscountTypeFlat,
		TotalPaid:    paid,
	}
}

func TestDerivePackageStatus(t *testing.T) {
	tests := []struct {
		name string
		inst *entity.PackageInstance
		want entity.PackageStatus
	}{
		{"starts in the future", instance(day(1), day(31), 100, 0), entity.PackageStatusUpcoming},
		{"running", instance(day(-5), day(25), 100, 0), entity.PackageStatusActive},
		{"ends exactly now", instance(day(-30), testNow, 100, 0), entity.PackageStatusActive},
		{"ended", instance(day(-40), day(-10), 100, 0), entity.PackageStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePackageStatus(tt.inst, testNow))
		})
	}
}

func TestDerivePackageStatus_OverrideSticks(t *testing.T) {
	inst := instance(day(-5), day(25), 100, 0)
	inst.PackageStatus = entity.PackageStatusCancelled
	inst.StatusOverride = true

	assert.Equal(t, entity.PackageStatusCancelled, DerivePackageStatus(inst, testNow))
}

func TestDerivePaymentStatus(t *testing.T) {
	past := day(-1)
	future := day(5)

	tests := []struct {
		name    string
		paid    float64
		pending float64
		due     *time.Time
		status  entity.PackageStatus
		want    entity.PaymentStatus
	}{
		{"fully paid", 100, 0, nil, entity.PackageStatusActive, entity.PaymentStatusPaid},
		{"nothing paid", 0, 100, nil, entity.PackageStatusActive, entity.PaymentStatusPending},
		{"partly paid", 40, 60, nil, entity.PackageStatusActive, entity.PaymentStatusPartial},
		{"due date passed", 40, 60, &past, entity.PackageStatusActive, entity.PaymentStatusOverdue},
		{"due date ahead", 40, 60, &future, entity.PackageStatusActive, entity.PaymentStatusPartial},
		{"cancelled wins", 0, 100, &past, entity.PackageStatusCancelled, entity.PaymentStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := &entity.PackageInstance{
				TotalPaid:     tt.paid,
				TotalPending:  tt.pending,
				DueDate:       tt.due,
				PackageStatus: tt.status,
			}
			assert.Equal(t, tt.want, DerivePaymentStatus(inst, testNow))
		})
	}
}

func TestRecompute_MemberStatus(t *testing.T) {
	tests := []struct {
		name      string
		packages  []*entity.PackageInstance
		suspended bool
		want      entity.MemberStatus
	}{
		{"no packages", nil, false, entity.MemberStatusInactive},
		{"only upcoming", []*entity.PackageInstance{instance(day(2), day(32), 100, 0)}, false, entity.MemberStatusInactive},
		{"one active", []*entity.PackageInstance{instance(day(-2), day(28), 100, 0)}, false, entity.MemberStatusActive},
		{"expired and upcoming", []*entity.PackageInstance{
			instance(day(-40), day(-10), 100, 0),
			instance(day(2), day(32), 100, 0),
		}, false, entity.MemberStatusExpired},
		{"expired then active", []*entity.PackageInstance{
			instance(day(-40), day(-10), 100, 0),
			instance(day(-10), day(20), 100, 0),
		}, false, entity.MemberStatusActive},
		{"suspended overrides active", []*entity.PackageInstance{instance(day(-2), day(28), 100, 0)}, true, entity.MemberStatusSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &entity.Member{Packages: tt.packages, Suspended: tt.suspended}
			Recompute(m, testNow)
			assert.Equal(t, tt.want, m.MemberStatus)
		})
	}
}

func TestRecompute_ManualExpireMakesMemberExpired(t *testing.T) {
	inst := instance(day(-2), day(28), 100, 0)
	inst.PackageStatus = entity.PackageStatusExpired
	inst.StatusOverride = true
	m := &entity.Member{Packages: []*entity.PackageInstance{inst}}

	Recompute(m, testNow)

	assert.Equal(t, entity.MemberStatusExpired, m.MemberStatus)
	assert.Nil(t, m.CurrentPackage)
}

func TestRecompute_Totals(t *testing.T) {
	paid := instance(day(-10), day(20), 3000, 3000)
	partial := instance(day(-10), day(20), 2000, 500)
	partial.Discount = 500
	cancelled := instance(day(-10), day(20), 1000, 0)
	cancelled.PackageStatus = entity.PackageStatusCancelled
	cancelled.StatusOverride = true

	m := &entity.Member{Packages: []*entity.PackageInstance{paid, partial, cancelled}}
	Recompute(m, testNow)

	assert.Equal(t, 1500.0, partial.FinalAmount)
	assert.Equal(t, 1000.0, partial.TotalPending)
	assert.Equal(t, entity.PaymentStatusPartial, partial.PaymentStatus)
	assert.Equal(t, entity.PaymentStatusCancelled, cancelled.PaymentStatus)
	assert.Equal(t, 3500.0, m.TotalPaid)
	assert.Equal(t, 1000.0, m.TotalPending)
}

func TestRecompute_ExtensionChargesAddToFinal(t *testing.T) {
	inst := instance(day(-10), day(20), 3000, 0)
	inst.Discount = 10
	inst.DiscountType = entity.DiscountTypePercentage
	inst.ExtensionCharges = 250
	m := &entity.Member{Packages: []*entity.PackageInstance{inst}}

	Recompute(m, testNow)

	assert.Equal(t, 2950.0, inst.FinalAmount)
	assert.Equal(t, 2950.0, inst.TotalPending)
}

func TestRecompute_PrimaryNormalisation(t *testing.T) {
	t.Run("keeps first flagged active", func(t *testing.T) {
		a := instance(day(-5), day(25), 100, 0)
		b := instance(day(-5), day(25), 100, 0)
		c := instance(day(-5), day(25), 100, 0)
		b.IsPrimary = true
		c.IsPrimary = true
		m := &entity.Member{Packages: []*entity.PackageInstance{a, b, c}}

		Recompute(m, testNow)

		assert.False(t, a.IsPrimary)
		assert.True(t, b.IsPrimary)
		assert.False(t, c.IsPrimary)
		require.NotNil(t, m.CurrentPackage)
		assert.Equal(t, b.ID, m.CurrentPackage.InstanceID)
	})

	t.Run("falls back to first active", func(t *testing.T) {
		expired := instance(day(-40), day(-10), 100, 0)
		expired.IsPrimary = true
		active := instance(day(-5), day(25), 100, 0)
		m := &entity.Member{Packages: []*entity.PackageInstance{expired, active}}

		Recompute(m, testNow)

		assert.False(t, expired.IsPrimary)
		assert.True(t, active.IsPrimary)
		assert.Equal(t, active.ID, m.CurrentPackage.InstanceID)
	})

	t.Run("leaves flags alone when nothing is active", func(t *testing.T) {
		upcoming := instance(day(5), day(35), 100, 0)
		upcoming.IsPrimary = true
		m := &entity.Member{Packages: []*entity.PackageInstance{upcoming}}

		Recompute(m, testNow)

		assert.True(t, upcoming.IsPrimary)
		assert.Nil(t, m.CurrentPackage)
	})
}

func TestRecompute_IsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "packages")
		m := &entity.Member{Suspended: rapid.Bool().Draw(t, "suspended")}

		for i := 0; i < n; i++ {
			startOffset := rapid.IntRange(-120, 60).Draw(t, "start")
			length := rapid.IntRange(1, 120).Draw(t, "length")
			amount := float64(rapid.IntRange(0, 50_000).Draw(t, "amount"))
			paid := float64(rapid.IntRange(0, 60_000).Draw(t, "paid"))

			inst := instance(day(startOffset), day(startOffset+length), amount, paid)
			inst.IsPrimary = rapid.Bool().Draw(t, "primary")
			if rapid.IntRange(0, 4).Draw(t, "override") == 0 {
				inst.PackageStatus = rapid.SampledFrom([]entity.PackageStatus{
					entity.PackageStatusExpired,
					entity.PackageStatusCancelled,
				}).Draw(t, "overrideStatus")
				inst.StatusOverride = true
			}
			m.Packages = append(m.Packages, inst)
		}

		Recompute(m, testNow)
		first := cloneMember(m)
		Recompute(m, testNow)

		if !assert.ObjectsAreEqual(first, m) {
			t.Fatalf("second recompute changed the member")
		}

		primaries := 0
		for _, p := range m.Packages {
			if p.IsPrimary && p.PackageStatus == entity.PackageStatusActive {
				primaries++
			}
			if p.TotalPending < 0 {
				t.Fatalf("negative pending %v", p.TotalPending)
			}
		}
		if primaries > 1 {
			t.Fatalf("%d active primaries", primaries)
		}
	})
}

func cloneMember(m *entity.Member) *entity.Member {
	c := *m
	c.Packages = make([]*entity.PackageInstance, len(m.Packages))
	for i, p := range m.Packages {
		cp := *p
		c.Packages[i] = &cp
	}
	if m.CurrentPackage != nil {
		cp := *m.CurrentPackage
		c.CurrentPackage = &cp
	}

	return &c
}

package mongodb

import (
	"testing"
	"time"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestBuildMemberFilter(t *testing.T) {
	t.Run("live members by default", func(t *testing.T) {
		got := buildMemberFilter(repository.MemberFilter{})
		assert.Equal(t, bson.M{"is_deleted": false}, got)
	})

	t.Run("deleted only", func(t *testing.T) {
		got := buildMemberFilter(repository.MemberFilter{Deleted: repository.DeletedOnly})
		assert.Equal(t, true, got["is_deleted"])
	})

	t.Run("include deleted drops the flag", func(t *testing.T) {
		got := buildMemberFilter(repository.MemberFilter{Deleted: repository.DeletedInclude})
		_, ok := got["is_deleted"]
		assert.False(t, ok)
	})

	t.Run("status and package type", func(t *testing.T) {
		got := buildMemberFilter(repository.MemberFilter{
			Status:      entity.MemberStatusExpired,
			PackageType: "Personal Training",
		})
		assert.Equal(t, "Expired", got["member_status"])
		assert.Equal(t, "Personal Training", got["packages.package_type"])
	})

	t.Run("status at a point in time follows package dates", func(t *testing.T) {
		now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
		running := bson.M{"packages": bson.M{"$elemMatch": bson.M{
			"status_override": false,
			"start_date":      bson.M{"$lte": now},
			"end_date":        bson.M{"$gte": now},
		}}}

		active := buildMemberFilter(repository.MemberFilter{Status: entity.MemberStatusActive, AsOf: now})
		assert.NotContains(t, active, "member_status")
		assert.Equal(t, false, active["suspended"])
		assert.Equal(t, bson.A{running}, active["$and"])

		expired := buildMemberFilter(repository.MemberFilter{Status: entity.MemberStatusExpired, AsOf: now})
		assert.Equal(t, bson.A{running}, expired["$nor"])
		require.Len(t, expired["$and"], 1)

		inactive := buildMemberFilter(repository.MemberFilter{Status: entity.MemberStatusInactive, AsOf: now})
		assert.Len(t, inactive["$nor"], 2)
		assert.NotContains(t, inactive, "$and")

		suspended := buildMemberFilter(repository.MemberFilter{Status: entity.MemberStatusSuspended, AsOf: now})
		assert.Equal(t, true, suspended["suspended"])
		assert.Equal(t, false, suspended["is_deleted"])
	})

	t.Run("search escapes regex metacharacters", func(t *testing.T) {
		got := buildMemberFilter(repository.MemberFilter{Search: "+91 98(76)"})
		or, ok := got["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 4)

		first := or[0].(bson.M)["full_name"].(bson.Regex)
		assert.Equal(t, `\+91 98\(76\)`, first.Pattern)
		assert.Equal(t, "i", first.Options)
	})
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"defaults", 0, 0, 1, defaultPageLimit},
		{"keeps valid values", 3, 50, 3, 50},
		{"caps the limit", 1, 10_000, 1, maxPageLimit},
		{"negative page", -2, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLim, limit)
		})
	}
}

func duplicateKeyError(index string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: gymdesk.members index: " + index + " dup key: { : \"x\" }",
		}},
	}
}

func TestMemberDuplicateError(t *testing.T) {
	assert.Equal(t, repository.ErrDuplicatePhone, memberDuplicateError(duplicateKeyError(idxMemberPhoneLive)))
	assert.Equal(t, repository.ErrDuplicateEmail, memberDuplicateError(duplicateKeyError(idxMemberEmailLive)))
	assert.Equal(t, repository.ErrDuplicateRegistrationNumber, memberDuplicateError(duplicateKeyError(idxMemberRegistrationNumber)))
	assert.Nil(t, memberDuplicateError(mongo.ErrNoDocuments))
	assert.Nil(t, memberDuplicateError(nil))
}

func TestMemberMapping_PreservesLedger(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 7)
	inst := &entity.PackageInstance{
		ID:            uuid.New(),
		PackageID:     uuid.New(),
		PackageName:   "Quarterly",
		PackageType:   "Membership",
		Duration:      entity.Duration{Value: 3, Unit: entity.DurationUnitMonths},
		Freezable:     true,
		StartDate:     now,
		EndDate:       now.AddDate(0, 3, 0),
		Amount:        9000,
		Discount:      25,
		DiscountType:  entity.DiscountTypePercentage,
		FinalAmount:   6750,
		TotalPaid:     5000,
		TotalPending:  1750,
		PaymentStatus: entity.PaymentStatusPartial,
		DueDate:       &due,
		PackageStatus: entity.PackageStatusActive,
		IsPrimary:     true,
		FrozenDays:    4,
		AddedAt:       now,
	}
	member := &entity.Member{
		ID:                 uuid.New(),
		FullName:           "Asha Rao",
		PhoneNumber:        "9876543210",
		RegistrationNumber: "FLM1001",
		MemberType:         entity.MemberTypeRegular,
		JoiningDate:        now,
		Packages:           []*entity.PackageInstance{inst},
		Payments: []*entity.Payment{{
			ReceiptNumber:     "RCP-20260310-ABCDEF12",
			PackageInstanceID: inst.ID,
			PackageName:       "Quarterly",
			Amount:            5000,
			PaymentMethod:     entity.PaymentMethodUPI,
			PaidAt:            now,
		}},
		TotalPaid:    5000,
		TotalPending: 1750,
		MemberStatus: entity.MemberStatusActive,
		CurrentPackage: &entity.CurrentPackage{
			InstanceID:    inst.ID,
			PackageID:     inst.PackageID,
			PackageName:   "Quarterly",
			StartDate:     inst.StartDate,
			EndDate:       inst.EndDate,
			FinalAmount:   6750,
			TotalPending:  1750,
			PaymentStatus: entity.PaymentStatusPartial,
		},
		Version:   4,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc := fromMemberDomain(member)
	assert.Empty(t, doc.Payments[0].RecordedBy)

	got, err := toMemberDomain(doc)
	require.NoError(t, err)
	assert.Equal(t, member, got)
}

func TestToMemberDomain_RejectsBadID(t *testing.T) {
	doc := fromMemberDomain(&entity.Member{ID: uuid.New()})
	doc.ID = "not-a-uuid"

	_, err := toMemberDomain(doc)
	assert.Error(t, err)
}

func TestMigrationIndexes_UniqueConstraints(t *testing.T) {
	indexes := migrationIndexes()

	assert.Contains(t, indexes, colMembers)
	assert.Contains(t, indexes, colEmployees)
	assert.Contains(t, indexes, colPackageTemplates)
	assert.Len(t, indexes[colMembers], 7)
}

func TestRevenuePipeline(t *testing.T) {
	ist := time.FixedZone("IST", 5*60*60+30*60)
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, ist)
	to := from.AddDate(0, 1, 0)

	pipeline := revenuePipeline(from, to)
	require.Len(t, pipeline, 4)

	paidIn := bson.M{"payments.paid_at": bson.M{"$gte": from, "$lt": to}}
	assert.Equal(t, paidIn, pipeline[0][0].Value)
	assert.Equal(t, "$payments", pipeline[1][0].Value)
	assert.Equal(t, paidIn, pipeline[2][0].Value)

	facet := pipeline[3][0].Value.(bson.M)
	daily := facet["daily"].(bson.A)[0].(bson.M)["$group"].(bson.M)["_id"].(bson.M)["$dateToString"].(bson.M)
	assert.Equal(t, "+05:30", daily["timezone"])
}

func TestBuildRevenueReport(t *testing.T) {
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("totals and ordering", func(t *testing.T) {
		report := buildRevenueReport(from, to, revenueFacets{
			ByMethod: []revenueBucket{
				{Key: "Cash", Amount: 1500.005, Count: 2},
				{Key: "UPI", Amount: 4000, Count: 1},
				{Key: "Card", Amount: 1500.005, Count: 1},
			},
			Daily: []revenueBucket{
				{Key: "2026-03-03", Amount: 4000, Count: 1},
				{Key: "2026-03-01", Amount: 3000.01, Count: 3},
			},
		})

		assert.Equal(t, from, report.From)
		assert.Equal(t, to, report.To)
		assert.Equal(t, int64(4), report.TransactionCount)
		assert.Equal(t, 7000.02, report.TotalRevenue)
		assert.Equal(t, 1750.01, report.AverageTransaction)

		require.Len(t, report.ByPaymentMethod, 3)
		assert.Equal(t, entity.PaymentMethodUPI, report.ByPaymentMethod[0].PaymentMethod)
		assert.Equal(t, entity.PaymentMethodCard, report.ByPaymentMethod[1].PaymentMethod)
		assert.Equal(t, entity.PaymentMethodCash, report.ByPaymentMethod[2].PaymentMethod)
		assert.Equal(t, 1500.01, report.ByPaymentMethod[2].Amount)

		require.Len(t, report.Daily, 2)
		assert.Equal(t, "2026-03-01", report.Daily[0].Date)
		assert.Equal(t, 3000.01, report.Daily[0].Amount)
	})

	t.Run("no payments", func(t *testing.T) {
		report := buildRevenueReport(from, to, revenueFacets{})

		assert.Zero(t, report.TotalRevenue)
		assert.Zero(t, report.AverageTransaction)
		assert.NotNil(t, report.ByPaymentMethod)
		assert.NotNil(t, report.Daily)
	})
}

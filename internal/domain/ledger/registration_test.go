package ledger

import (
	"testing"
	"time"

	"gymdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistration(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		memberType entity.MemberType
		want       RegistrationRequest
	}{
		{"blank", "", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM"}},
		{"not available", " not available ", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM"}},
		{"n/a", "N/A", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM"}},
		{"na", "na", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM"}},
		{"visitor marker", "Visitor", entity.MemberTypeRegular, RegistrationRequest{Prefix: "VIS"}},
		{"visitor type", "", entity.MemberTypeVisitor, RegistrationRequest{Prefix: "VIS"}},
		{"explicit number is upper-cased", " flm1200 ", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM", Value: "FLM1200"}},
		{"legacy number", "GYM-77", entity.MemberTypeRegular, RegistrationRequest{Prefix: "FLM", Value: "GYM-77"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRegistration(tt.raw, tt.memberType, PrefixRegular, PrefixVisitor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Value == "", got.Auto())
		})
	}
}

func TestRegistrationSuffix(t *testing.T) {
	n, ok := RegistrationSuffix("FLM", "FLM1042")
	require.True(t, ok)
	assert.Equal(t, int64(1042), n)

	_, ok = RegistrationSuffix("FLM", "VIS1042")
	assert.False(t, ok)

	_, ok = RegistrationSuffix("FLM", "FLM10A")
	assert.False(t, ok)

	assert.Equal(t, "FLM1001", FormatRegistration("FLM", DefaultRegistrationFloor+1))
}

func TestEndDate(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration entity.Duration
		want     time.Time
	}{
		{"days", entity.Duration{Value: 10, Unit: entity.DurationUnitDays}, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)},
		{"weeks", entity.Duration{Value: 2, Unit: entity.DurationUnitWeeks}, time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)},
		{"months normalises like the calendar", entity.Duration{Value: 1, Unit: entity.DurationUnitMonths}, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)},
		{"years", entity.Duration{Value: 1, Unit: entity.DurationUnitYears}, time.Date(2027, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndDate(start, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := EndDate(start, entity.Duration{Value: 0, Unit: entity.DurationUnitDays})
	assert.Error(t, err)

	_, err = EndDate(start, entity.Duration{Value: 1, Unit: "Fortnights"})
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, time.March, 10, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(now, time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, DaysUntil(now, time.Date(2026, time.March, 13, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysUntil(now, time.Date(2026, time.March, 9, 23, 0, 0, 0, time.UTC)))
}

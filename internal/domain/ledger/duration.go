package ledger

import (
	"time"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
)

// EndDate adds a package duration to start using calendar arithmetic.
func EndDate(start time.Time, d entity.Duration) (time.Time, error) {
	if d.Value <= 0 {
		return time.Time{}, domainerrors.ErrInvalidInput.WithDetails("duration value must be positive")
	}

	switch d.Unit {
	case entity.DurationUnitDays:
		return start.AddDate(0, 0, d.Value), nil
	case entity.DurationUnitWeeks:
		return start.AddDate(0, 0, 7*d.Value), nil
	case entity.DurationUnitMonths:
		return start.AddDate(0, d.Value, 0), nil
	case entity.DurationUnitYears:
		return start.AddDate(d.Value, 0, 0), nil
	default:
		return time.Time{}, domainerrors.ErrInvalidInput.WithDetails("unknown duration unit: " + string(d.Unit))
	}
}

// DurationDays is the number of whole days a duration spans when started at start.
func DurationDays(start time.Time, d entity.Duration) (int, error) {
	end, err := EndDate(start, d)
	if err != nil {
		return 0, err
	}

	return daysBetween(start, end), nil
}

// DaysUntil counts calendar days from now until t, negative when t is in the past.
func DaysUntil(now, t time.Time) int {
	return daysBetween(startOfDay(now), startOfDay(t.In(now.Location())))
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Round(time.Hour).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

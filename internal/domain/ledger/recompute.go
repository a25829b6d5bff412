package ledger

import (
	"time"

	"gymdesk/internal/domain/entity"
)

// Recompute derives every computed field of the member from its packages. It is
// deterministic in (member, now) and idempotent: running it twice with the same
// clock changes nothing the second time.
func Recompute(m *entity.Member, now time.Time) {
	for _, p := range m.Packages {
		recomputeInstance(p, now)
	}

	normalizePrimary(m.Packages)

	var totalPaid, totalPending float64
	for _, p := range m.Packages {
		if p.PackageStatus == entity.PackageStatusCancelled {
			continue
		}
		totalPaid = add(totalPaid, p.TotalPaid)
		totalPending = add(totalPending, p.TotalPending)
	}
	m.TotalPaid = totalPaid
	m.TotalPending = totalPending

	m.MemberStatus = deriveMemberStatus(m, now)
	m.CurrentPackage = snapshot(primaryInstance(m.Packages))
}

// FinalAmount is the amount owed for an instance: the discounted price plus any
// extension charges, never negative.
func FinalAmount(p *entity.PackageInstance) float64 {
	q, err := Evaluate(p.Amount, p.Discount, p.DiscountType)
	if err != nil {
		// Stored instances are validated on write; treat a corrupt discount as none.
		return add(Round(max(p.Amount, 0)), p.ExtensionCharges)
	}

	return add(q.Final, p.ExtensionCharges)
}

// DerivePackageStatus applies the date rules unless a manual override is in place.
func DerivePackageStatus(p *entity.PackageInstance, now time.Time) entity.PackageStatus {
	if p.StatusOverride {
		return p.PackageStatus
	}

	switch {
	case now.Before(p.StartDate):
		return entity.PackageStatusUpcoming
	case p.EndDate.Before(now):
		return entity.PackageStatusExpired
	default:
		return entity.PackageStatusActive
	}
}

// DerivePaymentStatus maps the paid and pending amounts of an instance to a status.
func DerivePaymentStatus(p *entity.PackageInstance, now time.Time) entity.PaymentStatus {
	switch {
	case p.PackageStatus == entity.PackageStatusCancelled:
		return entity.PaymentStatusCancelled
	case p.TotalPending <= 0:
		return entity.PaymentStatusPaid
	case p.DueDate != nil && p.DueDate.Before(now):
		return entity.PaymentStatusOverdue
	case p.TotalPaid > 0:
		return entity.PaymentStatusPartial
	default:
		return entity.PaymentStatusPending
	}
}

func recomputeInstance(p *entity.PackageInstance, now time.Time) {
	p.FinalAmount = FinalAmount(p)
	p.TotalPending = max(sub(p.FinalAmount, p.TotalPaid), 0)
	p.PackageStatus = DerivePackageStatus(p, now)
	p.PaymentStatus = DerivePaymentStatus(p, now)
}

// normalizePrimary leaves exactly one primary among active instances: the first
// active one already flagged, else the first active one. With nothing active the
// flags are left alone so the next activation keeps the member's choice.
func normalizePrimary(packages []*entity.PackageInstance) {
	var chosen *entity.PackageInstance
	for _, p := range packages {
		if p.PackageStatus == entity.PackageStatusActive && p.IsPrimary {
			chosen = p

			break
		}
	}
	if chosen == nil {
		for _, p := range packages {
			if p.PackageStatus == entity.PackageStatusActive {
				chosen = p

				break
			}
		}
	}
	if chosen == nil {
		return
	}

	for _, p := range packages {
		p.IsPrimary = p == chosen
	}
}

func primaryInstance(packages []*entity.PackageInstance) *entity.PackageInstance {
	for _, p := range packages {
		if p.PackageStatus == entity.PackageStatusActive && p.IsPrimary {
			return p
		}
	}

	return nil
}

func deriveMemberStatus(m *entity.Member, now time.Time) entity.MemberStatus {
	if m.Suspended {
		return entity.MemberStatusSuspended
	}

	expired := false
	for _, p := range m.Packages {
		if p.PackageStatus == entity.PackageStatusActive && !p.EndDate.Before(now) {
			return entity.MemberStatusActive
		}
		if p.EndDate.Before(now) || p.PackageStatus == entity.PackageStatusExpired {
			expired = true
		}
	}

	if expired {
		return entity.MemberStatusExpired
	}

	return entity.MemberStatusInactive
}

func snapshot(p *entity.PackageInstance) *entity.CurrentPackage {
	if p == nil {
		return nil
	}

	return &entity.CurrentPackage{
		InstanceID:    p.ID,
		PackageID:     p.PackageID,
		PackageName:   p.PackageName,
		PackageType:   p.PackageType,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		FinalAmount:   p.FinalAmount,
		TotalPending:  p.TotalPending,
		PaymentStatus: p.PaymentStatus,
	}
}

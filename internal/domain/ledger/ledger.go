package ledger

import (
	"fmt"
	"strings"
	"time"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"

	"github.com/google/uuid"
)

// Ledger applies package lifecycle operations to a loaded member. Every
// operation leaves the member recomputed; persisting it is the caller's job.
type Ledger struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithIDGenerator replaces uuid.New for instance IDs and receipt numbers.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

// New creates a Ledger backed by the wall clock.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Now returns the ledger's current time.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// Recompute derives the member's computed fields at the ledger's current time.
func (l *Ledger) Recompute(m *entity.Member) {
	Recompute(m, l.now())
}

// Pricing overrides the template's discount for a single sale.
type Pricing struct {
	Discount     *float64
	DiscountType entity.DiscountType
}

// Settlement is money taken at the moment an instance is created or changed.
type Settlement struct {
	AmountPaid    float64
	PaymentMethod entity.PaymentMethod
	TransactionID string
	DueDate       *time.Time
	RecordedBy    uuid.UUID
}

// AddPackageInput describes a sale of a template to a member.
type AddPackageInput struct {
	StartDate *time.Time
	Pricing   Pricing
	Payment   Settlement
	IsPrimary bool
	Notes     string
}

// AddPackage sells tmpl to the member. The new instance becomes primary when
// requested or when the member has no active primary package. Primary is only
// meaningful among active instances, so requesting it for a sale that does not
// start today is rejected.
func (l *Ledger) AddPackage(m *entity.Member, tmpl *entity.PackageTemplate, in AddPackageInput) (*entity.PackageInstance, error) {
	now := l.now()
	Recompute(m, now)

	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}

	inst, err := l.newInstance(tmpl, start, in.Pricing, in.Notes)
	if err != nil {
		return nil, err
	}
	if in.IsPrimary && DerivePackageStatus(inst, now) != entity.PackageStatusActive {
		return nil, domainerrors.ErrInvalidInput.WithDetails("only a package that is active now can be made primary")
	}

	if in.IsPrimary || !hasActivePrimary(m.Packages) {
		clearPrimary(m.Packages)
		inst.IsPrimary = true
	}

	m.Packages = append(m.Packages, inst)
	if err := l.settle(m, inst, in.Payment); err != nil {
		return nil, err
	}

	Recompute(m, now)

	return inst, nil
}

// RenewPackageInput describes a renewal of an existing instance.
type RenewPackageInput struct {
	StartDate *time.Time
	Pricing   Pricing
	Payment   Settlement
	Notes     string
}

// RenewPackage appends a new instance of the same template. Without an explicit
// start it begins when the renewed instance ends, or now if that is already past
// or the instance was expired by hand.
func (l *Ledger) RenewPackage(m *entity.Member, instanceID uuid.UUID, tmpl *entity.PackageTemplate, in RenewPackageInput) (*entity.PackageInstance, error) {
	now := l.now()
	Recompute(m, now)

	prev, _ := m.FindPackage(instanceID)
	if prev == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}
	if prev.PackageStatus == entity.PackageStatusCancelled {
		return nil, domainerrors.ErrInvalidPackageState.WithDetails("a cancelled package cannot be renewed")
	}

	start := now
	if !prev.StatusOverride && prev.EndDate.After(now) {
		start = prev.EndDate
	}
	if in.StartDate != nil {
		start = *in.StartDate
	}

	inst, err := l.newInstance(tmpl, start, in.Pricing, in.Notes)
	if err != nil {
		return nil, err
	}
	inst.IsPrimary = prev.IsPrimary

	m.Packages = append(m.Packages, inst)
	if err := l.settle(m, inst, in.Payment); err != nil {
		return nil, err
	}

	Recompute(m, now)

	return inst, nil
}

// ExtendPackageInput describes extra days granted on an instance, optionally charged.
type ExtendPackageInput struct {
	Days int
	// Charge adds the extension to the amount owed. ChargeAmount is the list price
	// of the extension; when nil it is prorated from the instance's own price.
	Charge       bool
	ChargeAmount *float64
	Pricing      Pricing
	Payment      Settlement
}

// ExtendPackage pushes the end date of an active or upcoming instance.
func (l *Ledger) ExtendPackage(m *entity.Member, instanceID uuid.UUID, in ExtendPackageInput) (*entity.PackageInstance, error) {
	now := l.now()
	Recompute(m, now)

	inst, err := l.mutableInstance(m, instanceID, now)
	if err != nil {
		return nil, err
	}
	if in.Days <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("extension days must be positive")
	}

	if in.Charge {
		charge, err := extensionCharge(inst, in)
		if err != nil {
			return nil, err
		}
		inst.ExtensionCharges = add(inst.ExtensionCharges, charge)
	}

	inst.EndDate = addDays(inst.EndDate, in.Days)
	inst.ExtendedDays += in.Days

	if err := l.settle(m, inst, in.Payment); err != nil {
		return nil, err
	}

	Recompute(m, now)

	return inst, nil
}

// FreezePackage pauses a freezable instance by moving its end date. No charge applies.
func (l *Ledger) FreezePackage(m *entity.Member, instanceID uuid.UUID, days int) (*entity.PackageInstance, error) {
	now := l.now()
	Recompute(m, now)

	inst, err := l.mutableInstance(m, instanceID, now)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("freeze days must be positive")
	}
	if !inst.Freezable {
		return nil, domainerrors.ErrPackageNotFreezable
	}

	inst.EndDate = addDays(inst.EndDate, days)
	inst.FrozenDays += days

	Recompute(m, now)

	return inst, nil
}

// UpgradeAction decides what happens to the package being replaced.
type UpgradeAction string

const (
	UpgradeActionExpire UpgradeAction = "expire"
	UpgradeActionDelete UpgradeAction = "delete"
)

// UpgradePackageInput describes replacing one instance with a new template.
type UpgradePackageInput struct {
	OldInstanceID uuid.UUID
	Action        UpgradeAction
	Add           AddPackageInput
}

// UpgradePackage expires or removes the old instance and sells tmpl as the new
// primary package. The new sale is validated before the old instance is touched.
func (l *Ledger) UpgradePackage(m *entity.Member, tmpl *entity.PackageTemplate, in UpgradePackageInput) (*entity.PackageInstance, error) {
	now := l.now()
	Recompute(m, now)

	old, idx := m.FindPackage(in.OldInstanceID)
	if old == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}

	switch in.Action {
	case UpgradeActionExpire, "":
		if old.PackageStatus == entity.PackageStatusCancelled {
			return nil, domainerrors.ErrInvalidPackageState.WithDetails("a cancelled package cannot be upgraded")
		}
	case UpgradeActionDelete:
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("upgrade action must be expire or delete")
	}

	in.Add.IsPrimary = true
	scratch, err := l.newInstance(tmpl, now, in.Add.Pricing, in.Add.Notes)
	if err != nil {
		return nil, err
	}
	if greaterThan(in.Add.Payment.AmountPaid, scratch.FinalAmount) {
		return nil, domainerrors.ErrPaymentExceedsBalance.WithDetails(
			fmt.Sprintf("outstanding balance is %.2f", scratch.FinalAmount),
		)
	}

	if in.Action == UpgradeActionDelete {
		m.RemovePackage(idx)
	} else {
		old.PackageStatus = entity.PackageStatusExpired
		old.StatusOverride = true
		old.IsPrimary = false
	}

	return l.AddPackage(m, tmpl, in.Add)
}

// ExpirePackage marks an instance expired regardless of its dates.
func (l *Ledger) ExpirePackage(m *entity.Member, instanceID uuid.UUID) (*entity.PackageInstance, error) {
	return l.override(m, instanceID, entity.PackageStatusExpired)
}

// CancelPackage cancels an instance. Cancelled instances no longer count toward totals.
func (l *Ledger) CancelPackage(m *entity.Member, instanceID uuid.UUID) (*entity.PackageInstance, error) {
	return l.override(m, instanceID, entity.PackageStatusCancelled)
}

// SetPackageStatus applies a manual status. Only Expired and Cancelled can be set;
// the other statuses are derived from dates.
func (l *Ledger) SetPackageStatus(m *entity.Member, instanceID uuid.UUID, status entity.PackageStatus) (*entity.PackageInstance, error) {
	switch status {
	case entity.PackageStatusExpired, entity.PackageStatusCancelled:
		return l.override(m, instanceID, status)
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("only Expired or Cancelled can be set manually")
	}
}

// ChangeStartDate moves an instance's start and re-derives its end date from the
// duration snapshot, keeping days already granted by freezes and extensions.
func (l *Ledger) ChangeStartDate(m *entity.Member, instanceID uuid.UUID, start time.Time) (*entity.PackageInstance, error) {
	Recompute(m, l.now())

	inst, _ := m.FindPackage(instanceID)
	if inst == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}
	if inst.PackageStatus == entity.PackageStatusCancelled {
		return nil, domainerrors.ErrInvalidPackageState.WithDetails("a cancelled package cannot be rescheduled")
	}

	end, err := EndDate(start, inst.Duration)
	if err != nil {
		return nil, err
	}

	inst.StartDate = start
	inst.EndDate = addDays(end, inst.FrozenDays+inst.ExtendedDays)

	Recompute(m, l.now())

	return inst, nil
}

// PaymentInput is a payment against one instance. A nil InstanceID targets the
// current primary package, or the oldest instance with money outstanding.
type PaymentInput struct {
	InstanceID    *uuid.UUID
	Amount        float64
	PaymentMethod entity.PaymentMethod
	TransactionID string
	PaidAt        *time.Time
	Notes         string
	RecordedBy    uuid.UUID
}

// RecordPayment applies a payment and appends it to the member's payment log.
func (l *Ledger) RecordPayment(m *entity.Member, in PaymentInput) (*entity.Payment, error) {
	now := l.now()
	Recompute(m, now)

	if !isFinite(in.Amount) || in.Amount <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("payment amount must be positive")
	}

	var inst *entity.PackageInstance
	if in.InstanceID != nil {
		inst, _ = m.FindPackage(*in.InstanceID)
	} else {
		inst = payableInstance(m)
	}
	if inst == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}
	if inst.PackageStatus == entity.PackageStatusCancelled {
		return nil, domainerrors.ErrInvalidPackageState.WithDetails("payments cannot be recorded on a cancelled package")
	}

	paidAt := now
	if in.PaidAt != nil {
		paidAt = *in.PaidAt
	}

	payment, err := l.applyPayment(m, inst, in.Amount, in.PaymentMethod, in.TransactionID, paidAt, in.Notes, in.RecordedBy)
	if err != nil {
		return nil, err
	}

	Recompute(m, now)

	return payment, nil
}

func (l *Ledger) newInstance(tmpl *entity.PackageTemplate, start time.Time, pricing Pricing, notes string) (*entity.PackageInstance, error) {
	if tmpl == nil {
		return nil, domainerrors.ErrPackageTemplateNotFound
	}
	if !tmpl.Sellable() {
		return nil, domainerrors.ErrPackageTemplateInactive
	}

	discount := tmpl.DiscountValue
	discountType := tmpl.DiscountType
	if pricing.Discount != nil {
		discount = *pricing.Discount
		discountType = pricing.DiscountType
	}

	q, err := Evaluate(tmpl.OriginalPrice, discount, discountType)
	if err != nil {
		return nil, err
	}

	end, err := EndDate(start, tmpl.Duration)
	if err != nil {
		return nil, err
	}

	return &entity.PackageInstance{
		ID:           l.newID(),
		PackageID:    tmpl.ID,
		PackageName:  tmpl.PackageName,
		PackageType:  tmpl.PackageType,
		Duration:     tmpl.Duration,
		Freezable:    tmpl.Freezable,
		StartDate:    start,
		EndDate:      end,
		Amount:       q.Price,
		Discount:     q.Discount,
		DiscountType: q.DiscountType,
		FinalAmount:  q.Final,
		TotalPending: q.Final,
		Notes:        notes,
		AddedAt:      l.now(),
	}, nil
}

// settle records money taken together with a sale or extension.
func (l *Ledger) settle(m *entity.Member, inst *entity.PackageInstance, s Settlement) error {
	if s.PaymentMethod != "" {
		inst.PaymentMethod = string(s.PaymentMethod)
	}
	if s.DueDate != nil {
		inst.DueDate = s.DueDate
	}
	if s.AmountPaid < 0 || !isFinite(s.AmountPaid) {
		return domainerrors.ErrInvalidInput.WithDetails("amount paid must not be negative")
	}
	if s.AmountPaid == 0 {
		return nil
	}

	_, err := l.applyPayment(m, inst, s.AmountPaid, s.PaymentMethod, s.TransactionID, l.now(), "", s.RecordedBy)

	return err
}

func (l *Ledger) applyPayment(m *entity.Member, inst *entity.PackageInstance, amount float64, method entity.PaymentMethod, txnID string, paidAt time.Time, notes string, recordedBy uuid.UUID) (*entity.Payment, error) {
	pending := max(sub(FinalAmount(inst), inst.TotalPaid), 0)
	if greaterThan(amount, pending) {
		return nil, domainerrors.ErrPaymentExceedsBalance.WithDetails(
			fmt.Sprintf("outstanding balance is %.2f", pending),
		)
	}
	if method == "" {
		method = entity.PaymentMethodCash
	}

	inst.TotalPaid = add(inst.TotalPaid, amount)
	inst.PaymentMethod = string(method)

	payment := &entity.Payment{
		ReceiptNumber:     l.receiptNumber(paidAt),
		PackageInstanceID: inst.ID,
		PackageName:       inst.PackageName,
		Amount:            Round(amount),
		PaymentMethod:     method,
		TransactionID:     txnID,
		PaidAt:            paidAt,
		Notes:             notes,
		RecordedBy:        recordedBy,
	}
	m.Payments = append(m.Payments, payment)

	return payment, nil
}

func (l *Ledger) receiptNumber(at time.Time) string {
	id := strings.ReplaceAll(l.newID().String(), "-", "")

	return "RCP-" + at.Format("20060102") + "-" + strings.ToUpper(id[:8])
}

// mutableInstance finds an instance whose dates may still be moved.
func (l *Ledger) mutableInstance(m *entity.Member, instanceID uuid.UUID, now time.Time) (*entity.PackageInstance, error) {
	inst, _ := m.FindPackage(instanceID)
	if inst == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}

	switch DerivePackageStatus(inst, now) {
	case entity.PackageStatusActive, entity.PackageStatusUpcoming:
		return inst, nil
	default:
		return nil, domainerrors.ErrInvalidPackageState.WithDetails("only active or upcoming packages can be changed")
	}
}

func (l *Ledger) override(m *entity.Member, instanceID uuid.UUID, status entity.PackageStatus) (*entity.PackageInstance, error) {
	Recompute(m, l.now())

	inst, _ := m.FindPackage(instanceID)
	if inst == nil {
		return nil, domainerrors.ErrPackageInstanceNotFound
	}
	if inst.PackageStatus == entity.PackageStatusCancelled && status != entity.PackageStatusCancelled {
		return nil, domainerrors.ErrInvalidPackageState.WithDetails("a cancelled package cannot change status")
	}

	inst.PackageStatus = status
	inst.StatusOverride = true

	Recompute(m, l.now())

	return inst, nil
}

func extensionCharge(inst *entity.PackageInstance, in ExtendPackageInput) (float64, error) {
	base := 0.0
	if in.ChargeAmount != nil {
		base = *in.ChargeAmount
	} else {
		q, err := Evaluate(inst.Amount, inst.Discount, inst.DiscountType)
		if err != nil {
			return 0, err
		}
		days, err := DurationDays(inst.StartDate, inst.Duration)
		if err != nil {
			return 0, err
		}
		if days > 0 {
			base = Round(q.Final / float64(days) * float64(in.Days))
		}
	}

	discount := 0.0
	if in.Pricing.Discount != nil {
		discount = *in.Pricing.Discount
	}

	q, err := Evaluate(base, discount, in.Pricing.DiscountType)
	if err != nil {
		return 0, err
	}

	return q.Final, nil
}

func payableInstance(m *entity.Member) *entity.PackageInstance {
	for _, p := range m.Packages {
		if p.IsPrimary && p.PackageStatus == entity.PackageStatusActive {
			return p
		}
	}
	for _, p := range m.Packages {
		if p.PackageStatus != entity.PackageStatusCancelled && p.TotalPending > 0 {
			return p
		}
	}

	return nil
}

func hasActivePrimary(packages []*entity.PackageInstance) bool {
	return primaryInstance(packages) != nil
}

func clearPrimary(packages []*entity.PackageInstance) {
	for _, p := range packages {
		p.IsPrimary = false
	}
}

package mongodb

import (
	"context"
	"maps"
	"regexp"
	"sort"
	"time"

	"gymdesk/internal/domain/entity"
	"gymdesk/internal/domain/ledger"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// memberRepository implements the repository.MemberRepository interface on a MongoDB collection.
type memberRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *mongo.Database) repository.MemberRepository {
	return &memberRepository{
		coll: db.Collection(colMembers),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateMember inserts a new member document at version 1.
func (repo *memberRepository) CreateMember(ctx context.Context, member *entity.Member) error {
	now := repo.now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now
	member.Version = 1

	if _, err := repo.coll.InsertOne(ctx, fromMemberDomain(member)); err != nil {
		if mapped := memberDuplicateError(err); mapped != nil {
			return mapped
		}

		return errors.Wrap(err, "failed to create member")
	}

	return nil
}

// SaveMember replaces the member document when the stored version still matches.
func (repo *memberRepository) SaveMember(ctx context.Context, member *entity.Member) error {
	expected := member.Version
	updatedAt := repo.now()

	doc := fromMemberDomain(member)
	doc.Version = expected + 1
	doc.UpdatedAt = updatedAt

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID, "version": expected}, doc)
	if err != nil {
		if mapped := memberDuplicateError(err); mapped != nil {
			return mapped
		}

		return errors.Wrap(err, "failed to save member")
	}

	if res.MatchedCount == 0 {
		n, err := repo.coll.CountDocuments(ctx, bson.M{"_id": doc.ID})
		if err != nil {
			return errors.Wrap(err, "failed to check member existence")
		}
		if n == 0 {
			return repository.ErrMemberNotFound
		}

		return repository.ErrMemberVersionConflict
	}

	member.Version = doc.Version
	member.UpdatedAt = updatedAt

	return nil
}

// FindMemberByID retrieves a member, deleted or not.
func (repo *memberRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()}, "failed to find member by id")
}

// FindMemberByRegistrationNumber retrieves a member by registration number, deleted or not.
func (repo *memberRepository) FindMemberByRegistrationNumber(ctx context.Context, registrationNumber string) (*entity.Member, error) {
	return repo.findOne(ctx, bson.M{"registration_number": registrationNumber}, "failed to find member by registration number")
}

// FindMemberByPhone retrieves the live member using the phone number.
func (repo *memberRepository) FindMemberByPhone(ctx context.Context, phone string) (*entity.Member, error) {
	return repo.findOne(ctx, bson.M{"phone_number": phone, "is_deleted": false}, "failed to find member by phone")
}

func (repo *memberRepository) findOne(ctx context.Context, filter bson.M, msg string) (*entity.Member, error) {
	var doc model.MemberModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toMemberDomain(&doc)
}

// ListMembers returns one page of members, newest first, and the total matching count.
func (repo *memberRepository) ListMembers(ctx context.Context, filter repository.MemberFilter) ([]*entity.Member, int64, error) {
	query := buildMemberFilter(filter)
	page, limit := normalizePage(filter.Page, filter.Limit)

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count members")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	members, err := repo.findMany(ctx, query, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list members")
	}

	return members, total, nil
}

// ExistsPhone reports whether a live member other than excludeID uses the phone number.
func (repo *memberRepository) ExistsPhone(ctx context.Context, phone string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, bson.M{"phone_number": phone, "is_deleted": false, "_id": bson.M{"$ne": excludeID.String()}})
}

// ExistsEmail reports whether a live member other than excludeID uses the email.
func (repo *memberRepository) ExistsEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, bson.M{"email": email, "is_deleted": false, "_id": bson.M{"$ne": excludeID.String()}})
}

// ExistsRegistrationNumber reports whether any member, deleted included, holds the number.
func (repo *memberRepository) ExistsRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	return repo.exists(ctx, bson.M{"registration_number": registrationNumber})
}

func (repo *memberRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := repo.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to count members")
	}

	return n > 0, nil
}

// MaxRegistrationSuffix scans the registration numbers shaped PREFIX<N> and returns the largest N.
// Suffixes are compared numerically, so FLM999 sorts below FLM1000.
func (repo *memberRepository) MaxRegistrationSuffix(ctx context.Context, prefix string) (int64, error) {
	filter := bson.M{"registration_number": bson.M{"$regex": ledger.RegistrationPattern(prefix)}}
	opts := options.Find().SetProjection(bson.M{"registration_number": 1})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, errors.Wrap(err, "failed to scan registration numbers")
	}
	defer cursor.Close(ctx)

	var maxSuffix int64
	for cursor.Next(ctx) {
		var doc struct {
			RegistrationNumber string `bson:"registration_number"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return 0, errors.Wrap(err, "failed to decode registration number")
		}
		if n, ok := ledger.RegistrationSuffix(prefix, doc.RegistrationNumber); ok && n > maxSuffix {
			maxSuffix = n
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to iterate registration numbers")
	}

	return maxSuffix, nil
}

// FindMembersWithPackagesEnding returns live members holding a non-cancelled package ending within [from, to].
func (repo *memberRepository) FindMembersWithPackagesEnding(ctx context.Context, from, to time.Time) ([]*entity.Member, error) {
	filter := bson.M{
		"is_deleted": false,
		"packages": bson.M{"$elemMatch": bson.M{
			"end_date":       bson.M{"$gte": from, "$lte": to},
			"package_status": bson.M{"$ne": string(entity.PackageStatusCancelled)},
		}},
	}

	members, err := repo.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find members with packages ending")
	}

	return members, nil
}

type statusBucket struct {
	Status  string  `bson:"_id"`
	Count   int64   `bson:"count"`
	Paid    float64 `bson:"paid"`
	Pending float64 `bson:"pending"`
}

// MemberStatistics aggregates live members by status and counts deleted and expiring members.
func (repo *memberRepository) MemberStatistics(ctx context.Context, now, expiringBefore time.Time) (*entity.MemberStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_deleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$member_status",
			"count":   bson.M{"$sum": 1},
			"paid":    bson.M{"$sum": "$total_paid"},
			"pending": bson.M{"$sum": "$total_pending"},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate member statistics")
	}

	var buckets []statusBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, errors.Wrap(err, "failed to decode member statistics")
	}

	stats := &entity.MemberStatistics{ByStatus: make(map[entity.MemberStatus]int64, len(buckets))}
	for _, b := range buckets {
		stats.ByStatus[entity.MemberStatus(b.Status)] = b.Count
		stats.Total += b.Count
		stats.TotalPaid = ledger.Round(stats.TotalPaid + b.Paid)
		stats.TotalPending = ledger.Round(stats.TotalPending + b.Pending)
	}

	if stats.Deleted, err = repo.coll.CountDocuments(ctx, bson.M{"is_deleted": true}); err != nil {
		return nil, errors.Wrap(err, "failed to count deleted members")
	}

	stats.ExpiringSoon, err = repo.coll.CountDocuments(ctx, bson.M{
		"is_deleted": false,
		"packages": bson.M{"$elemMatch": bson.M{
			"end_date":       bson.M{"$gte": now, "$lte": expiringBefore},
			"package_status": string(entity.PackageStatusActive),
		}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count expiring members")
	}

	return stats, nil
}

type revenueBucket struct {
	Key    string  `bson:"_id"`
	Amount float64 `bson:"amount"`
	Count  int64   `bson:"count"`
}

type revenueFacets struct {
	ByMethod []revenueBucket `bson:"by_method"`
	Daily    []revenueBucket `bson:"daily"`
}

// RevenueReport unwinds the embedded payment logs and sums receipts paid in [from, to).
func (repo *memberRepository) RevenueReport(ctx context.Context, from, to time.Time) (*entity.RevenueReport, error) {
	cursor, err := repo.coll.Aggregate(ctx, revenuePipeline(from, to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate revenue")
	}

	var facets []revenueFacets
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, errors.Wrap(err, "failed to decode revenue")
	}

	var f revenueFacets
	if len(facets) > 0 {
		f = facets[0]
	}

	return buildRevenueReport(from, to, f), nil
}

func revenuePipeline(from, to time.Time) mongo.Pipeline {
	paidIn := bson.M{"payments.paid_at": bson.M{"$gte": from, "$lt": to}}
	group := func(key any) bson.M {
		return bson.M{"$group": bson.M{
			"_id":    key,
			"amount": bson.M{"$sum": "$payments.amount"},
			"count":  bson.M{"$sum": 1},
		}}
	}
	day := bson.M{"$dateToString": bson.M{
		"format":   "%Y-%m-%d",
		"date":     "$payments.paid_at",
		"timezone": from.Format("-07:00"),
	}}

	return mongo.Pipeline{
		{{Key: "$match", Value: paidIn}},
		{{Key: "$unwind", Value: "$payments"}},
		{{Key: "$match", Value: paidIn}},
		{{Key: "$facet", Value: bson.M{
			"by_method": bson.A{group("$payments.payment_method")},
			"daily":     bson.A{group(day)},
		}}},
	}
}

// buildRevenueReport rounds the raw sums and orders methods by amount and days by date.
func buildRevenueReport(from, to time.Time, f revenueFacets) *entity.RevenueReport {
	report := &entity.RevenueReport{
		From:            from,
		To:              to,
		ByPaymentMethod: make([]entity.RevenueByMethod, 0, len(f.ByMethod)),
		Daily:           make([]entity.DailyRevenue, 0, len(f.Daily)),
	}

	for _, b := range f.ByMethod {
		amount := ledger.Round(b.Amount)
		report.ByPaymentMethod = append(report.ByPaymentMethod, entity.RevenueByMethod{
			PaymentMethod: entity.PaymentMethod(b.Key),
			Amount:        amount,
			Count:         b.Count,
		})
		report.TotalRevenue = ledger.Round(report.TotalRevenue + amount)
		report.TransactionCount += b.Count
	}
	sort.Slice(report.ByPaymentMethod, func(i, j int) bool {
		a, b := report.ByPaymentMethod[i], report.ByPaymentMethod[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}

		return a.PaymentMethod < b.PaymentMethod
	})

	for _, b := range f.Daily {
		report.Daily = append(report.Daily, entity.DailyRevenue{Date: b.Key, Amount: ledger.Round(b.Amount), Count: b.Count})
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})

	if report.TransactionCount > 0 {
		report.AverageTransaction = ledger.Round(report.TotalRevenue / float64(report.TransactionCount))
	}

	return report
}

func (repo *memberRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptionsBuilder) ([]*entity.Member, error) {
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []model.MemberModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	members := make([]*entity.Member, 0, len(docs))
	for i := range docs {
		m, err := toMemberDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

// buildMemberFilter translates a MemberFilter into a MongoDB query.
func buildMemberFilter(filter repository.MemberFilter) bson.M {
	query := bson.M{}

	switch filter.Deleted {
	case repository.DeletedOnly:
		query["is_deleted"] = true
	case repository.DeletedInclude:
	default:
		query["is_deleted"] = false
	}

	if filter.Status != "" {
		if filter.AsOf.IsZero() {
			query["member_status"] = string(filter.Status)
		} else {
			maps.Copy(query, memberStatusAt(filter.Status, filter.AsOf))
		}
	}
	if filter.PackageType != "" {
		query["packages.package_type"] = filter.PackageType
	}
	if filter.Search != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"full_name": pattern},
			bson.M{"phone_number": pattern},
			bson.M{"email": pattern},
			bson.M{"registration_number": pattern},
		}
	}

	return query
}

// memberStatusAt matches members whose status, derived from their packages at
// now, equals status. It mirrors the ledger's derivation so a filtered page
// agrees with the recomputed members it returns.
func memberStatusAt(status entity.MemberStatus, now time.Time) bson.M {
	running := bson.M{"packages": bson.M{"$elemMatch": bson.M{
		"status_override": false,
		"start_date":      bson.M{"$lte": now},
		"end_date":        bson.M{"$gte": now},
	}}}
	lapsed := bson.M{"packages": bson.M{"$elemMatch": bson.M{"$or": bson.A{
		bson.M{"end_date": bson.M{"$lt": now}},
		bson.M{"status_override": true, "package_status": string(entity.PackageStatusExpired)},
	}}}}

	switch status {
	case entity.MemberStatusSuspended:
		return bson.M{"suspended": true}
	case entity.MemberStatusActive:
		return bson.M{"suspended": false, "$and": bson.A{running}}
	case entity.MemberStatusExpired:
		return bson.M{"suspended": false, "$and": bson.A{lapsed}, "$nor": bson.A{running}}
	default:
		return bson.M{"suspended": false, "$nor": bson.A{running, lapsed}}
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}

func memberDuplicateError(err error) error {
	index, ok := duplicateIndex(err, idxMemberRegistrationNumber, idxMemberPhoneLive, idxMemberEmailLive)
	if !ok {
		return nil
	}

	switch index {
	case idxMemberPhoneLive:
		return repository.ErrDuplicatePhone
	case idxMemberEmailLive:
		return repository.ErrDuplicateEmail
	default:
		return repository.ErrDuplicateRegistrationNumber
	}
}

// toMemberDomain maps the persistence model back to a domain entity.
func toMemberDomain(data *model.MemberModel) (*entity.Member, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid member id %q", data.ID)
	}

	m := &entity.Member{
		ID:                 id,
		FullName:           data.FullName,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		RegistrationNumber: data.RegistrationNumber,
		MemberType:         entity.MemberType(data.MemberType),
		JoiningDate:        data.JoiningDate,
		DateOfBirth:        data.DateOfBirth,
		Gender:             data.Gender,
		Address:            data.Address,
		Notes:              data.Notes,
		Packages:           make([]*entity.PackageInstance, 0, len(data.Packages)),
		Payments:           make([]*entity.Payment, 0, len(data.Payments)),
		TotalPaid:          data.TotalPaid,
		TotalPending:       data.TotalPending,
		MemberStatus:       entity.MemberStatus(data.MemberStatus),
		Suspended:          data.Suspended,
		IsDeleted:          data.IsDeleted,
		DeletedAt:          data.DeletedAt,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for i := range data.Packages {
		p, err := toPackageInstanceDomain(&data.Packages[i])
		if err != nil {
			return nil, err
		}
		m.Packages = append(m.Packages, p)
	}

	for i := range data.Payments {
		p := &data.Payments[i]
		m.Payments = append(m.Payments, &entity.Payment{
			ReceiptNumber:     p.ReceiptNumber,
			PackageInstanceID: parseOptionalUUID(p.PackageInstanceID),
			PackageName:       p.PackageName,
			Amount:            p.Amount,
			PaymentMethod:     entity.PaymentMethod(p.PaymentMethod),
			TransactionID:     p.TransactionID,
			PaidAt:            p.PaidAt,
			Notes:             p.Notes,
			RecordedBy:        parseOptionalUUID(p.RecordedBy),
		})
	}

	if cp := data.CurrentPackage; cp != nil {
		m.CurrentPackage = &entity.CurrentPackage{
			InstanceID:    parseOptionalUUID(cp.InstanceID),
			PackageID:     parseOptionalUUID(cp.PackageID),
			PackageName:   cp.PackageName,
			PackageType:   cp.PackageType,
			StartDate:     cp.StartDate,
			EndDate:       cp.EndDate,
			FinalAmount:   cp.FinalAmount,
			TotalPending:  cp.TotalPending,
			PaymentStatus: entity.PaymentStatus(cp.PaymentStatus),
		}
	}

	return m, nil
}

func toPackageInstanceDomain(data *model.PackageInstanceModel) (*entity.PackageInstance, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid package instance id %q", data.ID)
	}

	return &entity.PackageInstance{
		ID:               id,
		PackageID:        parseOptionalUUID(data.PackageID),
		PackageName:      data.PackageName,
		PackageType:      data.PackageType,
		Duration:         entity.Duration{Value: data.Duration.Value, Unit: entity.DurationUnit(data.Duration.Unit)},
		Freezable:        data.Freezable,
		StartDate:        data.StartDate,
		EndDate:          data.EndDate,
		Amount:           data.Amount,
		Discount:         data.Discount,
		DiscountType:     entity.DiscountType(data.DiscountType),
		ExtensionCharges: data.ExtensionCharges,
		FinalAmount:      data.FinalAmount,
		TotalPaid:        data.TotalPaid,
		TotalPending:     data.TotalPending,
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:    data.PaymentMethod,
		DueDate:          data.DueDate,
		PackageStatus:    entity.PackageStatus(data.PackageStatus),
		StatusOverride:   data.StatusOverride,
		IsPrimary:        data.IsPrimary,
		FrozenDays:       data.FrozenDays,
		ExtendedDays:     data.ExtendedDays,
		Notes:            data.Notes,
		AddedAt:          data.AddedAt,
	}, nil
}

// fromMemberDomain maps a domain entity to its persistence model.
func fromMemberDomain(data *entity.Member) *model.MemberModel {
	doc := &model.MemberModel{
		ID:                 data.ID.String(),
		FullName:           data.FullName,
		PhoneNumber:        data.PhoneNumber,
		Email:              data.Email,
		RegistrationNumber: data.RegistrationNumber,
		MemberType:         string(data.MemberType),
		JoiningDate:        data.JoiningDate,
		DateOfBirth:        data.DateOfBirth,
		Gender:             data.Gender,
		Address:            data.Address,
		Notes:              data.Notes,
		Packages:           make([]model.PackageInstanceModel, 0, len(data.Packages)),
		Payments:           make([]model.PaymentModel, 0, len(data.Payments)),
		TotalPaid:          data.TotalPaid,
		TotalPending:       data.TotalPending,
		MemberStatus:       string(data.MemberStatus),
		Suspended:          data.Suspended,
		IsDeleted:          data.IsDeleted,
		DeletedAt:          data.DeletedAt,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for _, p := range data.Packages {
		doc.Packages = append(doc.Packages, model.PackageInstanceModel{
			ID:               p.ID.String(),
			PackageID:        p.PackageID.String(),
			PackageName:      p.PackageName,
			PackageType:      p.PackageType,
			Duration:         model.DurationModel{Value: p.Duration.Value, Unit: string(p.Duration.Unit)},
			Freezable:        p.Freezable,
			StartDate:        p.StartDate,
			EndDate:          p.EndDate,
			Amount:           p.Amount,
			Discount:         p.Discount,
			DiscountType:     string(p.DiscountType),
			ExtensionCharges: p.ExtensionCharges,
			FinalAmount:      p.FinalAmount,
			TotalPaid:        p.TotalPaid,
			TotalPending:     p.TotalPending,
			PaymentStatus:    string(p.PaymentStatus),
			PaymentMethod:    p.PaymentMethod,
			DueDate:          p.DueDate,
			PackageStatus:    string(p.PackageStatus),
			StatusOverride:   p.StatusOverride,
			IsPrimary:        p.IsPrimary,
			FrozenDays:       p.FrozenDays,
			ExtendedDays:     p.ExtendedDays,
			Notes:            p.Notes,
			AddedAt:          p.AddedAt,
		})
	}

	for _, p := range data.Payments {
		doc.Payments = append(doc.Payments, model.PaymentModel{
			ReceiptNumber:     p.ReceiptNumber,
			PackageInstanceID: p.PackageInstanceID.String(),
			PackageName:       p.PackageName,
			Amount:            p.Amount,
			PaymentMethod:     string(p.PaymentMethod),
			TransactionID:     p.TransactionID,
			PaidAt:            p.PaidAt,
			Notes:             p.Notes,
			RecordedBy:        formatOptionalUUID(p.RecordedBy),
		})
	}

	if cp := data.CurrentPackage; cp != nil {
		doc.CurrentPackage = &model.CurrentPackageModel{
			InstanceID:    cp.InstanceID.String(),
			PackageID:     cp.PackageID.String(),
			PackageName:   cp.PackageName,
			PackageType:   cp.PackageType,
			StartDate:     cp.StartDate,
			EndDate:       cp.EndDate,
			FinalAmount:   cp.FinalAmount,
			TotalPending:  cp.TotalPending,
			PaymentStatus: string(cp.PaymentStatus),
		}
	}

	return doc
}

func parseOptionalUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func formatOptionalUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}

package mongodb

import (
	"gymdesk/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names.
var (
	colMembers              = model.MemberModel{}.CollectionName()
	colPackageTemplates     = model.PackageTemplateModel{}.CollectionName()
	colEmployees            = model.EmployeeModel{}.CollectionName()
	colRegistrationCounters = model.RegistrationCounterModel{}.CollectionName()
)

// Unique index names. They appear in duplicate key errors and identify the clashing field.
const (
	idxMemberRegistrationNumber = "uniq_registration_number"
	idxMemberPhoneLive          = "uniq_phone_number_live"
	idxMemberEmailLive          = "uniq_email_live"
	idxEmployeeEmail            = "uniq_employee_email"
)

// migrationIndexes returns the index definitions for all collections.
// Phone and email are unique among live members only, so a deleted member's
// contact details can be reused. Registration numbers are never reused.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colMembers: {
			{
				Keys:    bson.D{{Key: "registration_number", Value: 1}},
				Options: options.Index().SetName(idxMemberRegistrationNumber).SetUnique(true),
			},
			{
				Keys: bson.D{{Key: "phone_number", Value: 1}},
				Options: options.Index().
					SetName(idxMemberPhoneLive).
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_deleted": false}),
			},
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().
					SetName(idxMemberEmailLive).
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_deleted": false, "email": bson.M{"$type": "string"}}),
			},
			{Keys: bson.D{{Key: "is_deleted", Value: 1}, {Key: "member_status", Value: 1}}},
			{Keys: bson.D{{Key: "is_deleted", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "packages.end_date", Value: 1}}},
			{Keys: bson.D{{Key: "payments.paid_at", Value: 1}}},
		},
		colPackageTemplates: {
			{Keys: bson.D{{Key: "display_order", Value: 1}, {Key: "package_name", Value: 1}}},
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "status", Value: 1}}},
		},
		colEmployees: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(idxEmployeeEmail).SetUnique(true),
			},
		},
		colRegistrationCounters: {},
	}
}

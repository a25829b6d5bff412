package model

// RegistrationCounterModel holds the last issued suffix for one registration prefix.
type RegistrationCounterModel struct {
	Prefix string `bson:"_id"`
	Value  int64  `bson:"value"`
}

// CollectionName returns the collection counters are stored in.
func (RegistrationCounterModel) CollectionName() string {
	return "registration_counters"
}

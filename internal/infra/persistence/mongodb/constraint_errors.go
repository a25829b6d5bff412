package mongodb

import (
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// duplicateIndex reports which unique index a duplicate key error violated.
// ok is false when err is not a duplicate key error.
func duplicateIndex(err error, indexNames ...string) (string, bool) {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	msg := err.Error()
	for _, name := range indexNames {
		if strings.Contains(msg, name) {
			return name, true
		}
	}

	return "", true
}

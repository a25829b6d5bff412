package ledger

import (
	"regexp"
	"strconv"
	"strings"

	"gymdesk/internal/domain/entity"
)

const (
	// PrefixRegular is the registration prefix for regular members.
	PrefixRegular = "FLM"
	// PrefixVisitor is the registration prefix for visitors.
	PrefixVisitor = "VIS"
	// DefaultRegistrationFloor makes the first generated number PREFIX1001.
	DefaultRegistrationFloor int64 = 1000

	visitorMarker = "VISITOR"
)

var registrationPlaceholders = map[string]struct{}{
	"":              {},
	"N/A":           {},
	"NA":            {},
	"NOT AVAILABLE": {},
}

// RegistrationRequest is a caller-supplied registration number after normalisation.
type RegistrationRequest struct {
	Prefix string
	// Value is the requested number, empty when one must be generated.
	Value string
}

// Auto reports whether the allocator has to generate a number.
func (r RegistrationRequest) Auto() bool {
	return r.Value == ""
}

// ParseRegistration normalises a requested registration number. Placeholders
// ask for a generated number; "VISITOR" asks for a generated visitor number.
func ParseRegistration(raw string, memberType entity.MemberType, regularPrefix, visitorPrefix string) RegistrationRequest {
	prefix := regularPrefix
	if memberType == entity.MemberTypeVisitor {
		prefix = visitorPrefix
	}

	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == visitorMarker {
		return RegistrationRequest{Prefix: visitorPrefix}
	}
	if _, ok := registrationPlaceholders[value]; ok {
		return RegistrationRequest{Prefix: prefix}
	}

	return RegistrationRequest{Prefix: prefix, Value: value}
}

// RegistrationSuffix extracts N from PREFIX<N>. ok is false for any other shape.
func RegistrationSuffix(prefix, value string) (int64, bool) {
	re := registrationPattern(prefix)
	m := re.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// FormatRegistration renders PREFIX<N>.
func FormatRegistration(prefix string, n int64) string {
	return prefix + strconv.FormatInt(n, 10)
}

// RegistrationPattern returns the anchored pattern for numbers with the given prefix.
func RegistrationPattern(prefix string) string {
	return "^" + regexp.QuoteMeta(prefix) + `(\d+)$`
}

func registrationPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(RegistrationPattern(prefix))
}

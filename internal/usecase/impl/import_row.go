package impl

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
)

// Canonical member import columns. Spreadsheets in the wild spell them many
// ways; memberImport lists the accepted headers for each.
const (
	colRegistrationNumber = "Registration Number"
	colJoiningDate        = "Member Joining Date"
	colFullName           = "Full Name"
	colPhone              = "Phone"
	colEmail              = "Email Id"
	colPackage            = "Package"
	colPackageStartDate   = "Package Start Date"
	colPaidAmount         = "Paid Amount"
	colDiscount           = "Discount"
	colDue                = "Due"
	colMode               = "Mode"
	colDueDate            = "Due Date"
	colStatus             = "Status"
)

var memberImport = importSchema{
	columns: []string{
		colRegistrationNumber, colJoiningDate, colFullName, colPhone, colEmail, colPackage,
		colPackageStartDate, colPaidAmount, colDiscount, colDue, colMode, colDueDate, colStatus,
	},
	aliases: map[string][]string{
		colRegistrationNumber: {"Registration Number", "registrationNumber", "Reg No", "Registration No"},
		colJoiningDate:        {"Member Joining Date", "memberJoiningDate", "Joining Date", "joiningDate"},
		colFullName:           {"Full Name", "fullName", "Name"},
		colPhone:              {"Phone", "phone", "Phone Number", "phoneNumber", "Mobile"},
		colEmail:              {"Email Id", "email", "Email", "Email Address"},
		colPackage:            {"Package", "package", "Package Name", "packageName"},
		colPackageStartDate:   {"package start date", "packageStartDate", "Start Date"},
		colPaidAmount:         {"Paid Amount", "paidAmount", "Paid", "Amount Paid"},
		colDiscount:           {"Discount", "discount"},
		colDue:                {"Due", "due", "Due Amount"},
		colMode:               {"Mode", "mode", "Payment Mode", "Payment Method"},
		colDueDate:            {"Due Date", "dueDate"},
		colStatus:             {"Status", "status"},
	},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Date layouts tried in order. Day-first slashes and dashes follow the
// spreadsheets the desk exports.
var importDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2 Jan 2006",
	"2-Jan-2006",
}

// excelEpoch is day zero of spreadsheet serial dates. Serials outside
// [minExcelSerial, maxExcelSerial) are more likely years or typos than dates.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const (
	minExcelSerial = 10000
	maxExcelSerial = 2958466
)

// importSchema describes a spreadsheet layout: its canonical columns and the
// header spellings accepted for each, in order of preference.
type importSchema struct {
	columns []string
	aliases map[string][]string
}

func squashHeader(h string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(h), "")
}

// normalize resolves header aliases. When a row carries the same column under
// several spellings, the earliest alias with a non-blank cell wins.
func (s importSchema) normalize(raw map[string]any) map[string]string {
	headers := make([]string, 0, len(raw))
	for header := range raw {
		headers = append(headers, header)
	}
	sort.Strings(headers)

	byHeader := make(map[string]string, len(raw))
	for _, header := range headers {
		key := squashHeader(header)
		if byHeader[key] != "" {
			continue
		}
		byHeader[key] = cellString(raw[header])
	}

	cells := make(map[string]string, len(s.columns))
	for _, column := range s.columns {
		for _, alias := range s.aliases[column] {
			if v := byHeader[squashHeader(alias)]; v != "" {
				cells[column] = v

				break
			}
		}
	}

	return cells
}

func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// parseImportRow turns one spreadsheet row into a typed import row. It
// collects every problem with the row instead of stopping at the first.
func parseImportRow(index int, raw map[string]any) (*entity.ImportRow, []string) {
	cells := memberImport.normalize(raw)
	row := &entity.ImportRow{
		Row:                index + 2,
		RegistrationNumber: cells[colRegistrationNumber],
		FullName:           strings.Join(strings.Fields(cells[colFullName]), " "),
		PhoneNumber:        normalizePhone(cells[colPhone]),
		Email:              normalizeEmail(cells[colEmail]),
		PackageName:        strings.Join(strings.Fields(cells[colPackage]), " "),
		PaymentMethod:      cells[colMode],
		Status:             "Active",
	}

	var problems []string
	if row.FullName == "" {
		problems = append(problems, "Full Name is required")
	}
	if row.PhoneNumber == "" {
		problems = append(problems, "Phone is required")
	}
	if row.PackageName == "" {
		problems = append(problems, "Package is required")
	}

	if s := cells[colPackageStartDate]; s == "" {
		problems = append(problems, "Package start date is required")
	} else if d, ok := parseImportDate(s); ok {
		row.PackageStartDate = &d
	} else {
		problems = append(problems, "Invalid Package start date: "+s)
	}

	if s := cells[colJoiningDate]; s != "" {
		if d, ok := parseImportDate(s); ok {
			row.JoiningDate = &d
		} else {
			problems = append(problems, "Invalid Member Joining Date: "+s)
		}
	}

	if s := cells[colDueDate]; s != "" {
		if d, ok := parseImportDate(s); ok {
			row.DueDate = &d
		} else {
			problems = append(problems, "Invalid Due Date: "+s+". Use YYYY-MM-DD or DD/MM/YYYY")
		}
	}

	for _, f := range []struct {
		column string
		dst    **float64
	}{
		{colPaidAmount, &row.PaidAmount},
		{colDiscount, &row.Discount},
		{colDue, &row.Due},
	} {
		s := cells[f.column]
		if s == "" {
			continue
		}
		n, ok := parseImportAmount(s)
		if !ok {
			problems = append(problems, fmt.Sprintf("Invalid %s: %s", f.column, s))
			continue
		}
		*f.dst = &n
	}

	if s := cells[colStatus]; s != "" {
		switch strings.ToLower(s) {
		case "active":
		case "inactive":
			row.Status = "Inactive"
			row.Warnings = append(row.Warnings, "Status Inactive is recorded for reference; membership status is derived from packages")
		default:
			problems = append(problems, fmt.Sprintf("Invalid status: %s. Must be Active or Inactive", s))
		}
	}

	if row.RegistrationNumber == "" {
		row.Warnings = append(row.Warnings, "Registration number will be auto-generated")
	}

	return row, problems
}

func parseImportDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= minExcelSerial && serial < maxExcelSerial {
		return excelEpoch.AddDate(0, 0, int(serial)), true
	}

	return time.Time{}, false
}

// parseImportAmount accepts plain numbers with optional thousands separators and currency symbols.
func parseImportAmount(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}

	return n, true
}

// templateMatcher finds catalogue packages by the loose names spreadsheets use.
type templateMatcher struct {
	exact      map[string]*entity.PackageTemplate
	simplified map[string]*entity.PackageTemplate
	names      []string
}

var nonWord = regexp.MustCompile(`[^a-z0-9\s]+`)

func newTemplateMatcher(templates []*entity.PackageTemplate) *templateMatcher {
	m := &templateMatcher{
		exact:      make(map[string]*entity.PackageTemplate, len(templates)),
		simplified: make(map[string]*entity.PackageTemplate, len(templates)),
	}
	for _, tmpl := range templates {
		m.add(tmpl)
	}

	return m
}

// add registers tmpl unless an earlier template already claims its name.
func (m *templateMatcher) add(tmpl *entity.PackageTemplate) {
	if _, ok := m.exact[exactKey(tmpl.PackageName)]; !ok {
		m.exact[exactKey(tmpl.PackageName)] = tmpl
	}
	if _, ok := m.simplified[simplifiedKey(tmpl.PackageName)]; !ok {
		m.simplified[simplifiedKey(tmpl.PackageName)] = tmpl
	}
	m.names = append(m.names, tmpl.PackageName)
}

// named returns the template whose name equals name ignoring case and spacing.
func (m *templateMatcher) named(name string) *entity.PackageTemplate {
	return m.exact[exactKey(name)]
}

func (m *templateMatcher) find(name string) (*entity.PackageTemplate, error) {
	if tmpl := m.named(name); tmpl != nil {
		return tmpl, nil
	}
	if tmpl, ok := m.simplified[simplifiedKey(name)]; ok {
		return tmpl, nil
	}

	available := m.names
	suffix := ""
	if len(available) > 5 {
		available = available[:5]
		suffix = ", ..."
	}

	return nil, domainerrors.ErrPackageTemplateNotFound.WithDetails(
		fmt.Sprintf("package %q is not in the catalogue, available packages: %s%s", name, strings.Join(available, ", "), suffix),
	)
}

func exactKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func simplifiedKey(name string) string {
	return strings.Join(strings.Fields(nonWord.ReplaceAllString(strings.ToLower(name), "")), " ")
}

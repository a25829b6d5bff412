package entity

import "time"

// ImportRow is one spreadsheet row after column aliases have been resolved.
// Pointer amounts distinguish a blank cell from an explicit zero.
type ImportRow struct {
	Row                int        `json:"row"`
	RegistrationNumber string     `json:"registrationNumber"`
	JoiningDate        *time.Time `json:"joiningDate,omitempty"`
	FullName           string     `json:"fullName"`
	PhoneNumber        string     `json:"phoneNumber"`
	Email              string     `json:"email,omitempty"`
	PackageName        string     `json:"packageName"`
	PackageStartDate   *time.Time `json:"packageStartDate,omitempty"`
	PaidAmount         *float64   `json:"paidAmount,omitempty"`
	Discount           *float64   `json:"discount,omitempty"`
	Due                *float64   `json:"due,omitempty"`
	PaymentMethod      string     `json:"paymentMethod,omitempty"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
	Status             string     `json:"status,omitempty"`
	Warnings           []string   `json:"warnings,omitempty"`
}

// ImportRowError reports why a row was rejected. Row is the spreadsheet row
// number: the data index plus two, accounting for the header.
type ImportRowError struct {
	Row      int    `json:"row"`
	FullName string `json:"fullName"`
	Error    string `json:"error"`
}

// ImportSummary counts what a successful import did.
type ImportSummary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// ImportResult is the outcome of a bulk import. Failures never abort the batch.
type ImportResult struct {
	Successful []*Member         `json:"successful"`
	Failed     []*ImportRowError `json:"failed"`
	Total      int               `json:"total"`
	Summary    ImportSummary     `json:"summary"`
}

// ImportValidation is the dry-run report for a batch.
type ImportValidation struct {
	Valid   []*ImportRow      `json:"valid"`
	Invalid []*ImportRowError `json:"invalid"`
	Total   int               `json:"total"`
}

// TemplateImportAction says what a package import row did to the catalogue.
type TemplateImportAction string

const (
	TemplateImportCreated TemplateImportAction = "created"
	TemplateImportUpdated TemplateImportAction = "updated"
)

// TemplateImportRow reports one imported catalogue package.
type TemplateImportRow struct {
	Row         int                  `json:"row"`
	PackageName string               `json:"packageName"`
	Action      TemplateImportAction `json:"action"`
	ID          string               `json:"id,omitempty"`
	Warnings    []string             `json:"warnings,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// TemplateImportResult is the outcome of a package catalogue import. A failing
// row is reported and skipped.
type TemplateImportResult struct {
	Successful []*TemplateImportRow `json:"successful"`
	Failed     []*TemplateImportRow `json:"failed"`
	Total      int                  `json:"total"`
	Summary    ImportSummary        `json:"summary"`
}

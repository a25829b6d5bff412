package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"gymdesk/internal/domain/entity"
	domainerrors "gymdesk/internal/domain/errors"
	"gymdesk/internal/domain/repository"
	"gymdesk/internal/usecase"

	"github.com/google/uuid"
)

// Canonical package import columns.
const (
	colTmplName          = "Package Name"
	colTmplType          = "Package Type"
	colTmplCategory      = "Package Category"
	colTmplDurationValue = "Duration Value"
	colTmplDurationUnit  = "Duration Unit"
	colTmplPrice         = "Original Price"
	colTmplDiscountType  = "Discount Type"
	colTmplDiscountValue = "Discount Value"
	colTmplFreezable     = "Freezable"
	colTmplStatus        = "Package Status"
	colTmplDescription   = "Description"
	colTmplFeatures      = "Features"
)

const (
	defaultTemplateType     = "Membership"
	defaultTemplateCategory = "Basic"
)

var packageImport = importSchema{
	columns: []string{
		colTmplName, colTmplType, colTmplCategory, colTmplDurationValue, colTmplDurationUnit, colTmplPrice,
		colTmplDiscountType, colTmplDiscountValue, colTmplFreezable, colTmplStatus, colTmplDescription, colTmplFeatures,
	},
	aliases: map[string][]string{
		colTmplName:          {"Package Name", "packageName", "Name"},
		colTmplType:          {"Package Type", "packageType", "Type"},
		colTmplCategory:      {"Package Category", "category", "Category"},
		colTmplDurationValue: {"Duration Value", "durationValue", "duration_value", "Duration"},
		colTmplDurationUnit:  {"Duration Unit", "durationUnit", "duration_unit", "Unit"},
		colTmplPrice:         {"Original Price", "originalPrice", "Price"},
		colTmplDiscountType:  {"Discount Type", "discountType"},
		colTmplDiscountValue: {"Discount Value", "discountValue", "Discount"},
		colTmplFreezable:     {"Freezable", "freezable"},
		colTmplStatus:        {"Package Status", "status", "Status"},
		colTmplDescription:   {"Description", "description"},
		colTmplFeatures:      {"Features", "features"},
	},
}

// ImportPackageTemplates upserts catalogue packages row by row. A row whose
// name matches an existing package, ignoring case and spacing, updates it.
func (srv *packageCatalogService) ImportPackageTemplates(ctx context.Context, rows []map[string]any) (*entity.TemplateImportResult, error) {
	if len(rows) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please provide at least one package row")
	}
	if len(rows) > srv.maxRows {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("an import accepts at most %d rows, got %d", srv.maxRows, len(rows)))
	}

	existing, err := srv.templateRepo.ListPackageTemplates(ctx, repository.PackageTemplateFilter{})
	if err != nil {
		return nil, mapRepoError(err, "list package templates")
	}
	matcher := newTemplateMatcher(existing)

	result := &entity.TemplateImportResult{
		Successful: []*entity.TemplateImportRow{},
		Failed:     []*entity.TemplateImportRow{},
		Total:      len(rows),
	}
	for i, raw := range rows {
		row, err := srv.importTemplateRow(ctx, matcher, i, raw)
		if err != nil {
			name := packageImport.normalize(raw)[colTmplName]
			if name == "" {
				name = "Unknown"
			}
			result.Failed = append(result.Failed, &entity.TemplateImportRow{Row: i + 2, PackageName: name, Error: rowErrorMessage(err)})

			continue
		}

		result.Successful = append(result.Successful, row)
		if row.Action == entity.TemplateImportCreated {
			result.Summary.Created++
		} else {
			result.Summary.Updated++
		}
	}

	srv.log(ctx).Info("Package import finished",
		slog.Int("total", result.Total),
		slog.Int("created", result.Summary.Created),
		slog.Int("updated", result.Summary.Updated),
		slog.Int("failed", len(result.Failed)),
	)

	return result, nil
}

func (srv *packageCatalogService) importTemplateRow(ctx context.Context, matcher *templateMatcher, index int, raw map[string]any) (*entity.TemplateImportRow, error) {
	input, warnings, problems := parseTemplateImportRow(raw)
	if len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	row := &entity.TemplateImportRow{Row: index + 2, PackageName: input.PackageName, Warnings: warnings}

	if current := matcher.named(input.PackageName); current != nil {
		input.DisplayOrder = current.DisplayOrder
		if input.Features == nil {
			input.Features = current.Features
		}

		updated := *current
		if err := applyTemplateInput(&updated, input); err != nil {
			return nil, err
		}
		if err := srv.templateRepo.UpdatePackageTemplate(ctx, &updated); err != nil {
			return nil, mapRepoError(err, "update package template")
		}
		*current = updated

		row.Action = entity.TemplateImportUpdated
		row.ID = current.ID.String()

		return row, nil
	}

	tmpl := &entity.PackageTemplate{ID: uuid.New()}
	if err := applyTemplateInput(tmpl, input); err != nil {
		return nil, err
	}
	if err := srv.templateRepo.CreatePackageTemplate(ctx, tmpl); err != nil {
		return nil, mapRepoError(err, "create package template")
	}
	matcher.add(tmpl)

	row.Action = entity.TemplateImportCreated
	row.ID = tmpl.ID.String()

	return row, nil
}

// parseTemplateImportRow maps one spreadsheet row onto a template input. A
// missing or unknown duration falls back to one month with a warning; pricing
// is checked later by the evaluator.
func parseTemplateImportRow(raw map[string]any) (*usecase.PackageTemplateInput, []string, []string) {
	cells := packageImport.normalize(raw)
	input := &usecase.PackageTemplateInput{
		PackageName:  strings.Join(strings.Fields(cells[colTmplName]), " "),
		PackageType:  cells[colTmplType],
		Category:     cells[colTmplCategory],
		Description:  cells[colTmplDescription],
		Duration:     entity.Duration{Value: 1, Unit: entity.DurationUnitMonths},
		DiscountType: entity.DiscountTypeFlat,
	}
	if input.PackageType == "" {
		input.PackageType = defaultTemplateType
	}
	if input.Category == "" {
		input.Category = defaultTemplateCategory
	}

	var warnings, problems []string
	if input.PackageName == "" {
		problems = append(problems, "Package Name is required")
	}

	if n, ok := parseImportAmount(cells[colTmplDurationValue]); ok && n >= 1 && n == math.Trunc(n) {
		input.Duration.Value = int(n)
	} else {
		warnings = append(warnings, "Duration value missing or invalid, using 1")
	}
	if unit, ok := parseDurationUnit(cells[colTmplDurationUnit]); ok {
		input.Duration.Unit = unit
	} else {
		warnings = append(warnings, "Duration unit missing or invalid, using Months")
	}

	if n, ok := parseImportAmount(cells[colTmplPrice]); ok && n > 0 {
		input.OriginalPrice = n
	} else {
		problems = append(problems, "Valid Original Price is required")
	}

	switch strings.ToLower(cells[colTmplDiscountType]) {
	case "", "flat":
	case "percentage", "percent", "%":
		input.DiscountType = entity.DiscountTypePercentage
	default:
		problems = append(problems, fmt.Sprintf("Invalid Discount Type: %s. Must be flat or percentage", cells[colTmplDiscountType]))
	}
	if s := cells[colTmplDiscountValue]; s != "" {
		if n, ok := parseImportAmount(s); ok {
			input.DiscountValue = n
		} else {
			problems = append(problems, "Invalid Discount Value: "+s)
		}
	}

	switch strings.ToLower(cells[colTmplFreezable]) {
	case "yes", "y", "true", "1":
		input.Freezable = true
	}

	status, ok := parseTemplateStatus(cells[colTmplStatus])
	if !ok {
		problems = append(problems, fmt.Sprintf("Invalid Package Status: %s. Must be Active, Inactive or Coming Soon", cells[colTmplStatus]))
	}
	isActive := status == entity.TemplateStatusActive
	input.Status = status
	input.IsActive = &isActive

	if s := cells[colTmplFeatures]; s != "" {
		input.Features = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	}

	return input, warnings, problems
}

func parseDurationUnit(s string) (entity.DurationUnit, bool) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, unit := range []entity.DurationUnit{entity.DurationUnitDays, entity.DurationUnitWeeks, entity.DurationUnitMonths, entity.DurationUnitYears} {
		if key != "" && key == strings.TrimSuffix(strings.ToLower(string(unit)), "s") {
			return unit, true
		}
	}

	return "", false
}

func parseTemplateStatus(s string) (entity.TemplateStatus, bool) {
	if s == "" {
		return entity.TemplateStatusActive, true
	}
	for _, status := range []entity.TemplateStatus{entity.TemplateStatusActive, entity.TemplateStatusInactive, entity.TemplateStatusComingSoon} {
		if strings.EqualFold(strings.Join(strings.Fields(s), " "), string(status)) {
			return status, true
		}
	}

	return "", false
}

// ImportTemplate describes the accepted package spreadsheet layout.
func (srv *packageCatalogService) ImportTemplate() *usecase.ImportTemplate {
	return &usecase.ImportTemplate{
		Headers: packageImport.columns,
		Aliases: packageImport.aliases,
		SampleRows: []map[string]string{{
			colTmplName:          "Quarterly Gym",
			colTmplType:          "Membership",
			colTmplCategory:      "Basic",
			colTmplDurationValue: "3",
			colTmplDurationUnit:  "Months",
			colTmplPrice:         "9000",
			colTmplDiscountType:  "percentage",
			colTmplDiscountValue: "25",
			colTmplFreezable:     "Yes",
			colTmplStatus:        "Active",
			colTmplDescription:   "Full gym access for three months",
			colTmplFeatures:      "Cardio, Locker",
		}},
		Instructions: []string{
			"Required columns: Package Name, Original Price.",
			"Duration Value defaults to 1 and Duration Unit (Days, Weeks, Months, Years) to Months.",
			"Discount Type is flat or percentage. A flat discount is an amount off the price and is capped at the price.",
			"Package Status is Active, Inactive or Coming Soon. Only Active packages can be sold.",
			"Freezable accepts Yes or No. Features are separated by commas.",
			"A row whose Package Name matches an existing package, ignoring case and spacing, updates it.",
			fmt.Sprintf("At most %d rows per import. Failed rows are reported and skipped.", srv.maxRows),
		},
	}
}

package usecase

import (
	"context"

	"gymdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ImportTemplate describes the spreadsheet layout accepted by the importer.
type ImportTemplate struct {
	Headers      []string            `json:"headers"`
	Aliases      map[string][]string `json:"aliases"`
	SampleRows   []map[string]string `json:"sampleRows"`
	Instructions []string            `json:"instructions"`
}

// ImportUsecase bulk-imports members from spreadsheet rows. Each row is a
// header-to-cell map; headers may use any of the accepted aliases.
type ImportUsecase interface {
	// ImportMembers processes rows in order. A failing row is reported and skipped.
	ImportMembers(ctx context.Context, rows []map[string]any, recordedBy uuid.UUID) (*entity.ImportResult, error)

	// ValidateImport normalises and checks rows without writing anything.
	ValidateImport(ctx context.Context, rows []map[string]any) (*entity.ImportValidation, error)

	// Template returns the accepted headers, aliases and instructions.
	Template() *ImportTemplate
}

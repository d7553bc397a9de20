package roster

import (
	"context"
	"io"
)

// ImportService loads spreadsheets (.csv or .xlsx) into the roster and the
// employee directory. Every row is idempotent.
type ImportService interface {
	// ImportRoster get-or-creates roster records; existing ids are skipped
	ImportRoster(ctx context.Context, filename string, r io.Reader) (ImportResult, error)

	// ImportEmployees upserts directory rows keyed by employee id without
	// touching registration or promotion fields
	ImportEmployees(ctx context.Context, filename string, r io.Reader) (ImportResult, error)
}

package ports

import (
	"context"
	"io"

	"timesheet/internal/domain"
)

type Telemetry interface {
	Record(name string, attributes map[string]string)
}

// SpreadsheetReader turns an uploaded workbook into data rows keyed by the
// header row of its first sheet.
type SpreadsheetReader interface {
	ReadRows(ctx context.Context, filename string, content io.Reader) ([]domain.SheetRow, error)
}

// TimesheetStore is append-only. Callers validate before appending.
type TimesheetStore interface {
	Append(ctx context.Context, entry domain.Entry) error
	AppendBatch(ctx context.Context, entries []domain.Entry) error
	EntriesForUser(ctx context.Context, user string) ([]domain.Entry, error)
	Len(ctx context.Context) (int, error)
}

package service

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"timesheet/internal/domain"
)

type Upload struct {
	Filename string
	Content  io.Reader
}

type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// ImportFile parses the whole upload before touching the store, so a
// failure leaves no partial rows behind.
func (s *Service) ImportFile(ctx context.Context, requestingUser string, upload Upload) (ImportResult, error) {
	if requestingUser != domain.UserAdmin {
		s.telemetry.Record("import.rejected", map[string]string{"user": requestingUser})
		return ImportResult{}, fmt.Errorf("import requested by %q: %w", requestingUser, domain.ErrUnauthorized)
	}

	rows, err := s.reader.ReadRows(ctx, upload.Filename, upload.Content)
	if err != nil {
		s.telemetry.Record("import.failed", map[string]string{"file": upload.Filename, "reason": err.Error()})
		return ImportResult{}, domain.NewImportParseError(err)
	}

	entries := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.NewImportedEntry(row))
	}

	if err := s.store.AppendBatch(ctx, entries); err != nil {
		return ImportResult{}, fmt.Errorf("append imported entries: %w", err)
	}

	result := ImportResult{
		BatchID:  s.newBatchID(),
		Imported: len(entries),
		Message:  MessageImported,
	}
	s.telemetry.Record("import.completed", map[string]string{
		"batch_id": result.BatchID,
		"file":     upload.Filename,
		"rows":     strconv.Itoa(result.Imported),
	})
	return result, nil
}

package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"timesheet/internal/domain"
	"timesheet/internal/ports"
)

// Service owns the workspace shared by every caller: one store, one viewer
// slot and one form draft.
type Service struct {
	store      ports.TimesheetStore
	telemetry  ports.Telemetry
	reader     ports.SpreadsheetReader
	newBatchID func() string

	mu     sync.Mutex
	viewer string
	form   domain.FormState
}

func New(store ports.TimesheetStore, telemetry ports.Telemetry, reader ports.SpreadsheetReader) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("new service: store is nil")
	}
	if telemetry == nil {
		return nil, fmt.Errorf("new service: telemetry is nil")
	}
	if reader == nil {
		return nil, fmt.Errorf("new service: spreadsheet reader is nil")
	}
	return &Service{
		store:      store,
		telemetry:  telemetry,
		reader:     reader,
		newBatchID: uuid.NewString,
		viewer:     domain.Users()[0],
		form:       domain.DefaultFormState(),
	}, nil
}

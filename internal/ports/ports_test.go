package ports_test

import (
	"testing"

	"timesheet/internal/adapters/impexp"
	"timesheet/internal/adapters/persistence"
	"timesheet/internal/adapters/telemetry"
	"timesheet/internal/ports"
)

func TestAdaptersSatisfyPorts(t *testing.T) {
	var _ ports.TimesheetStore = persistence.NewMemoryStore()
	var _ ports.SpreadsheetReader = impexp.NewSpreadsheetReader()
	var _ ports.Telemetry = telemetry.NewDiscardTelemetry()
	var _ ports.Telemetry = telemetry.NewLogTelemetry(nil)
}

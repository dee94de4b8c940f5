package telemetry

import (
	"log/slog"
	"sort"

	"timesheet/internal/ports"
)

// LogTelemetry writes each recorded event as a structured log record.
type LogTelemetry struct {
	logger *slog.Logger
}

var _ ports.Telemetry = (*LogTelemetry)(nil)

// NewLogTelemetry falls back to slog.Default when logger is nil.
func NewLogTelemetry(logger *slog.Logger) *LogTelemetry {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTelemetry{logger: logger.With("component", "telemetry")}
}

// NewDiscardTelemetry drops every event.
func NewDiscardTelemetry() *LogTelemetry {
	return &LogTelemetry{logger: slog.New(slog.DiscardHandler)}
}

func (l *LogTelemetry) Record(name string, attributes map[string]string) {
	keys := make([]string, 0, len(attributes))
	for key := range attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys))
	for _, key := range keys {
		args = append(args, slog.String(key, attributes[key]))
	}
	l.logger.Info(name, args...)
}

package httpapi

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"timesheet/internal/adapters/impexp"
	"timesheet/internal/adapters/persistence"
	"timesheet/internal/adapters/telemetry"
	"timesheet/internal/service"
)

const maxJSONBodyBytes int64 = 1 << 20

type API struct {
	service        *service.Service
	cors           corsPolicy
	maxUploadBytes int64
	page           *template.Template
}

// NewRouter wires the in-memory store and the spreadsheet reader into a
// fresh service. Every request served by the returned handler shares it.
func NewRouter(config RuntimeConfig) (http.Handler, error) {
	svc, err := service.New(
		persistence.NewMemoryStore(),
		telemetry.NewLogTelemetry(slog.Default()),
		impexp.NewSpreadsheetReader(),
	)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return NewRouterWithDependencies(svc, config)
}

func NewRouterWithDependencies(svc *service.Service, config RuntimeConfig) (http.Handler, error) {
	if svc == nil {
		return nil, fmt.Errorf("service is nil")
	}
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	maxUploadBytes := config.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &API{
		service:        svc,
		cors:           newCORSPolicy(config),
		maxUploadBytes: maxUploadBytes,
		page:           page,
	}, nil
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w, r, a.cors)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.URL.Path == "/healthz" {
		a.healthz(w, r)
		return
	}
	if r.URL.Path == "/" {
		a.handlePage(w, r)
		return
	}

	if !strings.HasPrefix(r.URL.Path, "/api/") {
		notFound(w)
		return
	}

	segments := splitPath(r.URL.Path)
	switch {
	case isExactRoute(segments, "api", "options"):
		a.handleOptions(w, r)
	case isExactRoute(segments, "api", "viewer"):
		a.handleViewer(w, r)
	case isExactRoute(segments, "api", "entries"):
		a.handleEntries(w, r)
	case isExactRoute(segments, "api", "form"):
		a.handleForm(w, r)
	case isExactRoute(segments, "api", "form", "submit"):
		a.handleFormSubmit(w, r)
	case isExactRoute(segments, "api", "summary"):
		a.handleSummary(w, r)
	case isExactRoute(segments, "api", "imports"):
		a.handleImports(w, r)
	default:
		notFound(w)
	}
}

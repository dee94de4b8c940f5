package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"timesheet/internal/domain"
	"timesheet/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

type pageData struct {
	Title   string
	Options service.Options
	Viewer  string
	Form    domain.FormState
	Entries []domain.Entry
}

func parsePage() (*template.Template, error) {
	return template.New("index.html").Funcs(template.FuncMap{
		"dayName": func(idx int) string {
			return domain.DayColumns[idx]
		},
	}).ParseFS(templatesFS, "templates/index.html")
}

func (a *API) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	viewer, entries, err := a.service.CurrentEntries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data := pageData{
		Title:   "Timesheet",
		Options: a.service.Options(),
		Viewer:  viewer,
		Form:    a.service.Form(r.Context()),
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := a.page.Execute(&buf, data); err != nil {
		slog.Error("render page failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

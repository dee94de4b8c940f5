package httpapi

import (
	"net/http"
	"strings"

	"timesheet/internal/domain"
	"timesheet/internal/service"
)

type submitPayload struct {
	User        *string      `json:"user"`
	Task        string       `json:"task"`
	ProjectCode string       `json:"project_code"`
	Category    string       `json:"category"`
	WorkType    string       `json:"work_type"`
	Hours       hoursPayload `json:"hours"`
}

func (a *API) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		user := a.userFromQuery(r)
		entries, err := a.service.EntriesForUser(r.Context(), user)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": user, "entries": entries})
	case http.MethodPost:
		var payload submitPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			writeDecodeError(w, err)
			return
		}
		user := a.service.CurrentUser(r.Context())
		if payload.User != nil {
			user = *payload.User
		}
		hours, err := payload.Hours.weekHours()
		if err != nil {
			// Choice errors outrank hour errors, as in domain.NewEntry.
			if choiceErr := domain.ValidateChoices(user, payload.Category, payload.WorkType); choiceErr != nil {
				err = choiceErr
			}
			writeServiceError(w, err)
			return
		}
		result, err := a.service.Submit(r.Context(), service.SubmitInput{
			User:        user,
			Task:        payload.Task,
			ProjectCode: payload.ProjectCode,
			Category:    payload.Category,
			WorkType:    payload.WorkType,
			Hours:       hours,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	default:
		methodNotAllowed(w)
	}
}

// userFromQuery falls back to the shared viewer when ?user= is absent.
func (a *API) userFromQuery(r *http.Request) string {
	if user := strings.TrimSpace(r.URL.Query().Get("user")); user != "" {
		return user
	}
	return a.service.CurrentUser(r.Context())
}

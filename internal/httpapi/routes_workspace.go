package httpapi

import (
	"net/http"

	"timesheet/internal/domain"
)

type viewerPayload struct {
	User string `json:"user"`
}

type formPayload struct {
	Task        string       `json:"task"`
	ProjectCode string       `json:"project_code"`
	Category    string       `json:"category"`
	WorkType    string       `json:"work_type"`
	Hours       hoursPayload `json:"hours"`
}

func (a *API) handleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, a.service.Options())
}

func (a *API) handleViewer(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, viewerPayload{User: a.service.CurrentUser(r.Context())})
	case http.MethodPut:
		var payload viewerPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			writeDecodeError(w, err)
			return
		}
		if err := a.service.SelectUser(r.Context(), payload.User); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, viewerPayload{User: a.service.CurrentUser(r.Context())})
	default:
		methodNotAllowed(w)
	}
}

func (a *API) handleForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.service.Form(r.Context()))
	case http.MethodPut:
		var payload formPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			writeDecodeError(w, err)
			return
		}
		hours, err := payload.Hours.weekHours()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updated := a.service.UpdateForm(r.Context(), domain.FormState{
			Task:        payload.Task,
			ProjectCode: payload.ProjectCode,
			Category:    payload.Category,
			WorkType:    payload.WorkType,
			Hours:       hours,
		})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		writeJSON(w, http.StatusOK, a.service.ResetForm(r.Context()))
	default:
		methodNotAllowed(w)
	}
}

func (a *API) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	result, err := a.service.SubmitForm(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

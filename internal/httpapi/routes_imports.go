package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"timesheet/internal/service"
)

const uploadFormField = "file"

// handleImports acts for the current viewer. Only the administrative user
// gets past the service's gate.
func (a *API) handleImports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload too large (max %d bytes)", maxBytesErr.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing %q file field", uploadFormField))
		return
	}
	defer func() { _ = file.Close() }()

	requestingUser := a.service.CurrentUser(r.Context())
	result, err := a.service.ImportFile(r.Context(), requestingUser, service.Upload{
		Filename: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

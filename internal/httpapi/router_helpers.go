package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"timesheet/internal/service"
)

type corsPolicy struct {
	allowAnyOrigin bool
	allowedOrigins map[string]struct{}
	allowHeaders   string
	allowMethods   string
}

func newCORSPolicy(config RuntimeConfig) corsPolicy {
	policy := corsPolicy{
		allowAnyOrigin: config.AllowAnyCORSOrigin,
		allowedOrigins: make(map[string]struct{}, len(config.CORSAllowedOrigins)),
		allowHeaders:   "Content-Type",
		allowMethods:   "GET, POST, PUT, DELETE, OPTIONS",
	}
	for _, origin := range config.CORSAllowedOrigins {
		policy.allowedOrigins[origin] = struct{}{}
	}
	return policy
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

func isExactRoute(segments []string, parts ...string) bool {
	if len(segments) != len(parts) {
		return false
	}
	for idx, part := range parts {
		if segments[idx] != part {
			return false
		}
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write json failed", "status", status, "body_type", fmt.Sprintf("%T", body), "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeDecodeError(w http.ResponseWriter, err error) {
	message := "invalid JSON"
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		message = fmt.Sprintf("request body too large (max %d bytes)", maxBytesErr.Limit)
	}
	writeError(w, http.StatusBadRequest, message)
}

// writeServiceError reports an operation failure with the same status
// message the page shows to users.
func writeServiceError(w http.ResponseWriter, err error) {
	message := service.StatusMessage(err)
	switch {
	case service.IsUnauthorizedError(err):
		writeError(w, http.StatusForbidden, message)
	case service.IsValidationError(err):
		writeError(w, http.StatusBadRequest, message)
	case service.IsImportParseError(err):
		writeError(w, http.StatusUnprocessableEntity, message)
	default:
		slog.Error("operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func setCORS(w http.ResponseWriter, r *http.Request, policy corsPolicy) {
	if policy.allowAnyOrigin {
		w.Header().Set("Access-Control-Allow-Headers", policy.allowHeaders)
		w.Header().Set("Access-Control-Allow-Methods", policy.allowMethods)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		return
	}

	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return
	}
	if _, allowed := policy.allowedOrigins[origin]; !allowed {
		return
	}

	w.Header().Set("Access-Control-Allow-Headers", policy.allowHeaders)
	w.Header().Set("Access-Control-Allow-Methods", policy.allowMethods)
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Vary", "Origin")
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

func (a *API) healthz(w http.ResponseWriter, r *http.Request) {
	count, err := a.service.EntryCount(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Entries: count})
}

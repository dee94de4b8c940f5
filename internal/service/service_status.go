package service

import (
	"errors"
	"strings"

	"timesheet/internal/domain"
)

const (
	MessageEntryAdded   = "Entry added for %s"
	MessageImported     = "Excel uploaded and parsed."
	MessageUnauthorized = "Only Admin can upload files."
	messageUploadFailed = "Failed to upload: "
	messageInternal     = "internal error"
)

// StatusMessage converts an operation error into the text shown to users.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}

	var parseErr *domain.ImportParseError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return MessageUnauthorized
	case errors.As(err, &parseErr):
		return messageUploadFailed + parseErr.Reason
	case errors.Is(err, domain.ErrValidation):
		detailed := strings.TrimSpace(err.Error())
		for _, sentinel := range []error{domain.ErrInvalidUser, domain.ErrInvalidEnum, domain.ErrInvalidHours, domain.ErrValidation} {
			detailed = strings.TrimSuffix(detailed, ": "+sentinel.Error())
		}
		if detailed == "" {
			return domain.ErrValidation.Error()
		}
		return detailed
	default:
		return messageInternal
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrValidation)
}

func IsUnauthorizedError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

func IsImportParseError(err error) bool {
	return errors.Is(err, domain.ErrImportParse)
}

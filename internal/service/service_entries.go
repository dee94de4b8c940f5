package service

import (
	"context"
	"fmt"
	"strconv"

	"timesheet/internal/domain"
)

type SubmitInput struct {
	User        string           `json:"user"`
	Task        string           `json:"task"`
	ProjectCode string           `json:"project_code"`
	Category    string           `json:"category"`
	WorkType    string           `json:"work_type"`
	Hours       domain.WeekHours `json:"hours"`
}

type SubmitResult struct {
	User    string       `json:"user"`
	Entry   domain.Entry `json:"entry"`
	Message string       `json:"message"`
}

// Submit validates and appends one entry. On success the shared form draft
// is reset to its defaults before returning.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitLocked(ctx, input)
}

// SubmitForm submits the current form draft on behalf of the current viewer.
func (s *Service) SubmitForm(ctx context.Context) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submitLocked(ctx, SubmitInput{
		User:        s.viewer,
		Task:        s.form.Task,
		ProjectCode: s.form.ProjectCode,
		Category:    s.form.Category,
		WorkType:    s.form.WorkType,
		Hours:       s.form.Hours,
	})
}

func (s *Service) submitLocked(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	entry, err := domain.NewEntry(input.User, input.Task, input.ProjectCode, input.Category, input.WorkType, input.Hours)
	if err != nil {
		return SubmitResult{}, err
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return SubmitResult{}, fmt.Errorf("append entry: %w", err)
	}
	s.form = domain.DefaultFormState()

	s.telemetry.Record("entry.submitted", map[string]string{
		"user":  entry.User,
		"total": strconv.Itoa(entry.Total),
	})
	return SubmitResult{
		User:    entry.User,
		Entry:   entry,
		Message: fmt.Sprintf(MessageEntryAdded, entry.User),
	}, nil
}

func (s *Service) EntriesForUser(ctx context.Context, user string) ([]domain.Entry, error) {
	return s.store.EntriesForUser(ctx, user)
}

// CurrentEntries lists the entries of whoever is selected as viewer.
func (s *Service) CurrentEntries(ctx context.Context) (string, []domain.Entry, error) {
	viewer := s.CurrentUser(ctx)
	entries, err := s.store.EntriesForUser(ctx, viewer)
	if err != nil {
		return "", nil, err
	}
	return viewer, entries, nil
}

// EntryCount reports how many entries the store holds across all users.
func (s *Service) EntryCount(ctx context.Context) (int, error) {
	return s.store.Len(ctx)
}

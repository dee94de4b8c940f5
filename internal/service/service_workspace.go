package service

import (
	"context"

	"timesheet/internal/domain"
)

type Options struct {
	Users          []string `json:"users"`
	Categories     []string `json:"categories"`
	WorkTypes      []string `json:"work_types"`
	Days           []string `json:"days"`
	AdminUser      string   `json:"admin_user"`
	ImportSentinel string   `json:"import_sentinel"`
	MaxDayHours    int      `json:"max_day_hours"`
}

func (s *Service) Options() Options {
	return Options{
		Users:          domain.Users(),
		Categories:     domain.Categories(),
		WorkTypes:      domain.WorkTypes(),
		Days:           append([]string{}, domain.DayColumns[:]...),
		AdminUser:      domain.UserAdmin,
		ImportSentinel: domain.ImportSentinelUser,
		MaxDayHours:    domain.MaxDayHours,
	}
}

func (s *Service) CurrentUser(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewer
}

// SelectUser switches the single viewer slot. The store is never touched.
func (s *Service) SelectUser(_ context.Context, user string) error {
	if err := domain.ValidateUser(user); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewer = user
	return nil
}

func (s *Service) Form(_ context.Context) domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.form
}

// UpdateForm replaces the draft as given; values are checked on submit.
func (s *Service) UpdateForm(_ context.Context, form domain.FormState) domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = form
	return s.form
}

func (s *Service) ResetForm(_ context.Context) domain.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = domain.DefaultFormState()
	return s.form
}

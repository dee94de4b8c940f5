package service

import (
	"context"

	"timesheet/internal/domain"
)

func (s *Service) Summary(ctx context.Context, user string) (domain.HoursSummary, error) {
	entries, err := s.store.EntriesForUser(ctx, user)
	if err != nil {
		return domain.HoursSummary{}, err
	}
	return domain.SummarizeHours(user, entries), nil
}

package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/visitstats/dashboard/internal/repo"
)

var ErrDatabaseNotReachable = errors.New("database not reachable")

type Health struct {
	VisitRepo *repo.Visit
}

func NewHealth(visitRepo *repo.Visit) *Health {
	return &Health{
		VisitRepo: visitRepo,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.VisitRepo.Ping(ctx); err != nil {
		return errors.Wrap(ErrDatabaseNotReachable, err.Error())
	}

	return nil
}

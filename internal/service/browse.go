package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/model"
	"github.com/visitstats/dashboard/internal/repo"
)

// Browse serves the raw rows behind the dashboard.
type Browse struct {
	VisitRepo *repo.Visit
}

func NewBrowse(visitRepo *repo.Visit) *Browse {
	return &Browse{
		VisitRepo: visitRepo,
	}
}

func (s *Browse) Restaurants(ctx context.Context) ([]string, error) {
	restaurants, err := s.VisitRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "browse: failed to list restaurants")
	}
	return restaurants, nil
}

// Page returns visits in visit order. Out-of-range limits are clamped rather than rejected.
func (s *Browse) Page(ctx context.Context, limit, offset int) (*model.VisitPage, error) {
	if limit <= 0 {
		limit = constant.DefaultPageSize
	} else if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.VisitRepo.CountAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "browse: failed to count visits")
	}

	visits, err := s.VisitRepo.ListVisits(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "browse: failed to list visits")
	}

	return &model.VisitPage{
		Visits: visits,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

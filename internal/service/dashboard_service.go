package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type DashboardStats struct {
	Upcoming     int64
	Completed    int64
	Redo         int64
	Cancelled    int64
	Revenue      float64
	ExpenseTotal float64
}

type DashboardService struct {
	jobs     *repository.JobRepository
	expenses *repository.ExpenseRepository
}

func NewDashboardService(jobs *repository.JobRepository, expenses *repository.ExpenseRepository) *DashboardService {
	return &DashboardService{jobs: jobs, expenses: expenses}
}

func (s *DashboardService) Stats(ctx context.Context, year int, month time.Month) (*DashboardStats, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	from, to := monthRange(year, month)

	counts, err := s.jobs.CountByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	revenue, err := s.jobs.CompletedRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.SumForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Upcoming:     counts[model.JobStatusUpcoming],
		Completed:    counts[model.JobStatusCompleted],
		Redo:         counts[model.JobStatusRedo],
		Cancelled:    counts[model.JobStatusCancelled],
		Revenue:      revenue,
		ExpenseTotal: expenses,
	}, nil
}

func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

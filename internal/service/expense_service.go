package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type ExpenseService struct {
	expenses *repository.ExpenseRepository
}

func NewExpenseService(expenses *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

func (s *ExpenseService) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	if expense.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if expense.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if expense.SpentAt.IsZero() {
		expense.SpentAt = time.Now()
	}
	return s.expenses.Create(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ExpenseService) List(ctx context.Context, from, to *time.Time) ([]model.Expense, error) {
	return s.expenses.List(ctx, from, to)
}

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `
	id,
	description,
	category,
	amount,
	spent_at,
	created_by_id,
	created_at
`

func (r *ExpenseRepository) Create(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	var saved model.Expense
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO expenses (description, category, amount, spent_at, created_by_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+expenseColumns,
		expense.Description,
		expense.Category,
		expense.Amount,
		expense.SpentAt,
		expense.CreatedByID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM expenses WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, from, to *time.Time) ([]model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1=1`
	var args []interface{}
	if from != nil {
		query += ` AND spent_at >= ?`
		args = append(args, *from)
	}
	if to != nil {
		query += ` AND spent_at < ?`
		args = append(args, *to)
	}
	query += ` ORDER BY spent_at DESC`

	var expenses []model.Expense
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepository) SumForPeriod(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE spent_at >= ? AND spent_at < ?
	`, from, to).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `
	id,
	full_name,
	phone,
	email,
	region,
	active,
	created_at,
	updated_at
`

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = ?
	`, id).Scan(&employee).Error
	if err != nil {
		return nil, err
	}
	if employee.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	var saved model.Employee
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO employees (full_name, phone, email, region, active)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+employeeColumns,
		employee.FullName,
		employee.Phone,
		employee.Email,
		employee.Region,
		employee.Active,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	var saved model.Employee
	err := r.db.WithContext(ctx).Raw(`
		UPDATE employees SET
			full_name = ?,
			phone = ?,
			email = ?,
			region = ?,
			active = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+employeeColumns,
		employee.FullName,
		employee.Phone,
		employee.Email,
		employee.Region,
		employee.Active,
		employee.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM employees WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY full_name ASC
	`).Scan(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// DisplayNames resolves cleaner IDs to names for ledger rows and reports.
func (r *EmployeeRepository) DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID       uuid.UUID
		FullName string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name FROM employees WHERE id = ANY(?)
	`, ids).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.ID] = row.FullName
	}
	return names, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type EmployeeService struct {
	employees *repository.EmployeeRepository
}

func NewEmployeeService(employees *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) Create(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if employee.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if !employee.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, employee.Region)
	}
	return s.employees.Create(ctx, employee)
}

func (s *EmployeeService) Update(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if employee.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if !employee.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, employee.Region)
	}
	saved, err := s.employees.Update(ctx, employee)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.employees.List(ctx)
}

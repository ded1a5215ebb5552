package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/repository"
)

type CustomerService struct {
	customers *repository.CustomerRepository
}

func NewCustomerService(customers *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !customer.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, customer.Region)
	}
	return s.customers.Create(ctx, customer)
}

func (s *CustomerService) Update(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !customer.Region.Known() {
		return nil, fmt.Errorf("%w: unknown region %q", ErrInvalidInput, customer.Region)
	}
	saved, err := s.customers.Update(ctx, customer)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.customers.List(ctx)
}

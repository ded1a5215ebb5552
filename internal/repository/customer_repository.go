package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `
	id,
	name,
	phone,
	email,
	address,
	region,
	notes,
	created_at,
	updated_at
`

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = ?
	`, id).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	var saved model.Customer
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO customers (name, phone, email, address, region, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+customerColumns,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Region,
		customer.Notes,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	var saved model.Customer
	err := r.db.WithContext(ctx).Raw(`
		UPDATE customers SET
			name = ?,
			phone = ?,
			email = ?,
			address = ?,
			region = ?,
			notes = ?,
			updated_at = NOW()
		WHERE id = ?
		RETURNING `+customerColumns,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.Region,
		customer.Notes,
		customer.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM customers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY name ASC
	`).Scan(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id,
	email,
	password_hash,
	full_name,
	role,
	created_at
`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(email) = LOWER(?)
	`, email).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	var saved model.User
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES (?, ?, ?, ?)
		RETURNING `+userColumns,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Role,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

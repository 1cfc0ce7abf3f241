package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/workboard/workspace/internal/core/domain"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return userToDomain(rec), nil
}

func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Where("username = ?", user.Username).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists > 0 {
		return nil, domain.ErrUserExists
	}

	rec := userRecord{
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return userToDomain(rec), nil
}

func userToDomain(rec userRecord) *domain.User {
	return &domain.User{
		ID:           rec.ID,
		Username:     rec.Username,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

package jsonfile

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

type AuthRepository struct {
	store *Store
}

func NewAuthRepository(store *Store) *AuthRepository {
	return &AuthRepository{store: store}
}

func (r *AuthRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.data.Users {
		if u.Username == username {
			return toDomainUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *AuthRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.data.Users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	stored := fileUser{
		ID:           r.store.data.NextUserID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	r.store.data.NextUserID++
	r.store.data.Users = append(r.store.data.Users, stored)

	if err := r.store.save(); err != nil {
		// Roll the in-memory append back so memory and disk stay in step.
		r.store.data.Users = r.store.data.Users[:len(r.store.data.Users)-1]
		r.store.data.NextUserID--
		return nil, err
	}
	return toDomainUser(stored), nil
}

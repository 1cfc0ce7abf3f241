package ports

import (
	"context"

	"github.com/workboard/workspace/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, name, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

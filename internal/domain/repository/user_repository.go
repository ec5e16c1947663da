package repository

import (
	"context"

	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

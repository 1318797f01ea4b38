package repository

import (
	"context"

	"github.com/clohit/storefront-api/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios (admin). Campos en cero no filtran.
type UserFilter struct {
	Role     string
	IsActive *bool
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int, error)
}

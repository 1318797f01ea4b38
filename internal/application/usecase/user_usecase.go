package usecase

import (
	"context"
	"time"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// UserUseCase perfil del cliente autenticado y administración de usuarios.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Profile devuelve el usuario autenticado (sin hash de password).
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza nombre y/o email del usuario autenticado. Cambiar
// el email a uno ya registrado por otro usuario falla con ErrEmailAlreadyExists.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if in.Name == nil && in.Email == nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.applyUserPatch(ctx, user, in.Name, in.Email); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista usuarios con filtros opcionales de rol y estado (admin).
func (uc *UserUseCase) List(ctx context.Context, filter repository.UserFilter, page dto.PageRequest) ([]dto.UserResponse, *dto.PageResponse, error) {
	if filter.Role != "" && !entity.ValidRole(filter.Role) {
		return nil, nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	users, err := uc.userRepo.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	list := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, *toUserResponse(u))
	}
	return list, &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Get obtiene un usuario por ID (admin).
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update actualiza nombre, email, rol y/o estado de un usuario (admin).
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	if in.Name == nil && in.Email == nil && in.Role == nil && in.IsActive == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.applyUserPatch(ctx, user, in.Name, in.Email); err != nil {
		return nil, err
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario (admin).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(ctx, id)
}

// applyUserPatch aplica nombre/email sobre la entidad, verificando que el
// email nuevo no pertenezca a otro usuario.
func (uc *UserUseCase) applyUserPatch(ctx context.Context, user *entity.User, name, email *string) error {
	if name != nil {
		if *name == "" {
			return domain.ErrInvalidInput
		}
		user.Name = *name
	}
	if email != nil && *email != user.Email {
		if *email == "" {
			return domain.ErrInvalidInput
		}
		existing, err := uc.userRepo.FindByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return domain.ErrEmailAlreadyExists
		}
		user.Email = *email
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/application/usecase"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// fakeUserRepo repositorio de usuarios en memoria, indexado por ID.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) matches(u *entity.User, filter repository.UserFilter) bool {
	if filter.Role != "" && u.Role != filter.Role {
		return false
	}
	if filter.IsActive != nil && u.IsActive != *filter.IsActive {
		return false
	}
	return true
}

func (f *fakeUserRepo) List(_ context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.users {
		if f.matches(u, filter) {
			cp := *u
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeUserRepo) Count(_ context.Context, filter repository.UserFilter) (int, error) {
	total := 0
	for _, u := range f.users {
		if f.matches(u, filter) {
			total++
		}
	}
	return total, nil
}

func seedUser(repo *fakeUserRepo, id, email, role string, active bool) {
	repo.users[id] = &entity.User{
		ID:           id,
		Name:         "Usuario " + id,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         role,
		IsActive:     active,
		CreatedAt:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ──────────────────────────────────────────────────────────────────────────────
// Tests perfil del cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_DevuelveElUsuarioAutenticado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Profile(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", out.ID)
	assert.Equal(t, "ana@example.com", out.Email)
}

func TestProfile_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Profile(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_CambiaNombreYEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{
		Name:  strPtr("Ana María"),
		Email: strPtr("ana.maria@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana María", out.Name)
	assert.Equal(t, "ana.maria@example.com", out.Email)
	assert.Equal(t, entity.RoleCustomer, repo.users["u1"].Role, "el perfil no puede cambiar el rol")
}

func TestUpdateProfile_EmailDeOtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	seedUser(repo, "u2", "eva@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{
		Email: strPtr("eva@example.com"),
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, "ana@example.com", repo.users["u1"].Email, "el email no debe cambiar")
}

func TestUpdateProfile_MismoEmailNoEsConflicto(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{
		Email: strPtr("ana@example.com"),
		Name:  strPtr("Ana"),
	})
	assert.NoError(t, err)
}

func TestUpdateProfile_SinCamposEsInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests administración de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserList_FiltraPorRolYEstado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	seedUser(repo, "u2", "eva@example.com", entity.RoleCustomer, false)
	seedUser(repo, "u3", "admin@example.com", entity.RoleAdmin, true)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	users, page, err := uc.List(ctx, repository.UserFilter{Role: entity.RoleCustomer}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, page.Total)

	users, _, err = uc.List(ctx, repository.UserFilter{Role: entity.RoleCustomer, IsActive: boolPtr(false)}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].ID)
}

func TestUserList_RolDesconocidoEsInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, _, err := uc.List(context.Background(), repository.UserFilter{Role: "superuser"}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_CambiaRolYDesactiva(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Update(context.Background(), "u1", dto.AdminUpdateUserRequest{
		Role:     strPtr(entity.RoleAdmin),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.False(t, out.IsActive)
}

func TestUserUpdate_RolDesconocidoEsInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "u1", dto.AdminUpdateUserRequest{Role: strPtr("superuser")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_EmailDeOtroUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	seedUser(repo, "u2", "eva@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Update(context.Background(), "u1", dto.AdminUpdateUserRequest{Email: strPtr("eva@example.com")})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserDelete_EliminaYReportaInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "ana@example.com", entity.RoleCustomer, true)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "u1"))
	assert.NotContains(t, repo.users, "u1")

	err := uc.Delete(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

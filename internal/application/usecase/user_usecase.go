package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/application/action"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/backend"
)

// UserUseCase administración de usuarios (/api/users).
type UserUseCase struct {
	res resource[entity.User, dto.UserRequest]
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(api *backend.Client) *UserUseCase {
	return &UserUseCase{res: resource[entity.User, dto.UserRequest]{
		api: api, name: "users", base: "/api/users",
		singular: "el usuario", plural: "los usuarios",
	}}
}

// List lista usuarios.
func (uc *UserUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.Page[entity.User], error) {
	return uc.res.list(ctx, q, nil)
}

// Get obtiene un usuario por ID.
func (uc *UserUseCase) Get(ctx context.Context, id int) (*entity.User, error) {
	return uc.res.get(ctx, id)
}

// Create da de alta un usuario; la contraseña es obligatoria en el alta.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*entity.User, error) {
	if in.Password == "" {
		return action.Run(ctx, "users.create", "Error al crear el usuario", func(context.Context) (*entity.User, error) {
			return nil, &dto.ValidationError{Messages: []string{"Contraseña es obligatorio"}}
		})
	}
	return uc.res.create(ctx, in)
}

// Update modifica un usuario. Una contraseña vacía no se envía.
func (uc *UserUseCase) Update(ctx context.Context, id int, in dto.UserRequest) (*entity.User, error) {
	return uc.res.update(ctx, id, in)
}

// ChangeStatus activa o desactiva un usuario.
func (uc *UserUseCase) ChangeStatus(ctx context.Context, id int, status string) (*entity.User, error) {
	return uc.res.patch(ctx, "status", "/status", "Error al cambiar el estado del usuario", id,
		dto.UserStatusRequest{Status: status})
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int) error {
	return uc.res.remove(ctx, id)
}

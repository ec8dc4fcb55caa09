package dto

// UserRequest alta o modificación de un usuario. Password es obligatorio solo en el alta
// (lo verifica el caso de uso).
type UserRequest struct {
	Name       string   `json:"nombre" label:"Nombre" validate:"required,max=120"`
	Email      string   `json:"email" label:"Email" validate:"required,email"`
	Password   string   `json:"password,omitempty" label:"Contraseña" validate:"omitempty,min=6"`
	Roles      []string `json:"roles" label:"Roles" validate:"min=1,dive,oneof=ADMIN SUPERVISOR OPERARIO"`
	EmployeeID *int     `json:"empleadoId,omitempty" label:"Empleado"`
}

// UserStatusRequest cambio de estado de un usuario.
type UserStatusRequest struct {
	Status string `json:"estado" label:"Estado" validate:"required,oneof=ACTIVO INACTIVO"`
}

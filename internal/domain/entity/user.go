package entity

import "strings"

// Roles válidos (tal como los emite el backend).
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleOperario   = "OPERARIO"
)

// Estados de usuario.
const (
	UserActive   = "ACTIVO"
	UserInactive = "INACTIVO"
)

// User representa un usuario del panel (cuenta de acceso del backend).
type User struct {
	ID         int      `json:"usuario_id"`
	Name       string   `json:"nombre"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	Status     string   `json:"estado"`
	EmployeeID *int     `json:"empleadoId,omitempty"`
}

// SessionUser es el payload de la cookie "user". Es informativo: la autorización siempre
// se decide con el token.
type SessionUser struct {
	ID         string   `json:"id"`
	Roles      []string `json:"roles"`
	EmployeeID *int     `json:"empleadoId,omitempty"`
}

// HasRole compara sin distinguir mayúsculas.
func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

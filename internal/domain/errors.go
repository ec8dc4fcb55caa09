package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes se muestran tal cual al usuario.
var (
	ErrTokenNotFound      = errors.New("Token no encontrado")
	ErrSessionExpired     = errors.New("la sesión expiró, inicia sesión nuevamente")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrBackendUnavailable = errors.New("no se pudo contactar al servidor")
)

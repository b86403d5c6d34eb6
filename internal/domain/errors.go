package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrUpstream agrupa fallos del backend de inventario (red, 5xx, payload ilegible).
	ErrUpstream = errors.New("backend de inventario no disponible")
	// ErrUpstreamUnauthorized el backend rechazó el token reenviado (401).
	ErrUpstreamUnauthorized = errors.New("el backend de inventario rechazó el token")
)

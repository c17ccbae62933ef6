package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmpresaNotFound    = errors.New("empresa no encontrada")
	ErrResolucionNotFound = errors.New("resolución no encontrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEstadoTerminal     = errors.New("la resolución está en un estado terminal")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
)

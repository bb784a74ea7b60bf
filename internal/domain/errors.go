package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son resultados recuperables que la capa de presentación traduce
// a mensajes de usuario; ninguno termina el proceso.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrIllegalEdit       = errors.New("edición no permitida sobre el registro")
)

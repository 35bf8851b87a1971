package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrPlanNotFound       = errors.New("plan de producción no encontrado")
	ErrPlanAlreadyRunning = errors.New("el plan ya tiene una ejecución en curso")
	ErrTransactionAborted = errors.New("ejecución del plan abortada, transacción revertida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidHorizon     = errors.New("horizonte inválido: inicio posterior al fin")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

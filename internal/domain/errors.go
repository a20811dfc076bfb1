package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los traduce a códigos estables; la capa postgres traduce
// violaciones de constraint hacia estos sentinelas, nunca al revés.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrTaxIDAlreadyExists = errors.New("la identificación tributaria ya está registrada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCompanyInactive    = errors.New("la empresa está inactiva")
	ErrPlanLimitReached   = errors.New("límite del plan alcanzado")
)

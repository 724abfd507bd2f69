// Package domain errores de dominio compartidos (sin dependencias externas).
package domain

import "errors"

var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrOrderAnnulled    = errors.New("la orden de compra está anulada y es inmutable")
	ErrDetailCountFixed = errors.New("el número de detalles de una orden existente no puede cambiar")
	ErrSubmitInFlight   = errors.New("ya hay un envío en curso para esta sesión")
	ErrHasDependents    = errors.New("el recurso tiene dependientes activos")
)

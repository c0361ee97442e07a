package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Consistencia del ciclo de caja.
	ErrCashBoxAlreadyOpen = errors.New("ya existe una caja abierta en la sucursal")
	ErrNoOpenCashBox      = errors.New("no hay caja abierta en la sucursal")

	// Máquinas de estado de traslados.
	ErrTransferNotPending   = errors.New("el traslado no está pendiente")
	ErrTransferNotRequested = errors.New("el traslado no está en estado solicitado")

	// Sesiones de conteo.
	ErrCountAlreadyAdjusted = errors.New("la sesión de conteo ya fue ajustada")
)

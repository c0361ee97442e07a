package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain"
)

// respondDomainError traduce los errores de dominio a códigos HTTP. Todos los
// handlers de comandos pasan por acá para que el contrato sea uniforme.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrCashBoxAlreadyOpen),
		errors.Is(err, domain.ErrNoOpenCashBox),
		errors.Is(err, domain.ErrTransferNotPending),
		errors.Is(err, domain.ErrTransferNotRequested),
		errors.Is(err, domain.ErrCountAlreadyAdjusted),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// CashTransferHandler maneja envíos de efectivo entre sucursales (protegido).
type CashTransferHandler struct {
	uc *ledger.CashTransferUseCase
}

// NewCashTransferHandler construye el handler.
func NewCashTransferHandler(uc *ledger.CashTransferUseCase) *CashTransferHandler {
	return &CashTransferHandler{uc: uc}
}

// Initiate godoc
// @Summary      Enviar efectivo a otra sucursal
// @Tags         cash-transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashTransferCreateRequest  true  "Transferencia"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-transfers [post]
func (h *CashTransferHandler) Initiate(c *fiber.Ctx) error {
	var in dto.CashTransferCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.InitiateCashTransfer(c.Context(), ledger.CashTransferInput{
		FromBranchID: in.FromBranchID,
		ToBranchID:   in.ToBranchID,
		UserID:       GetUserID(c),
		Amount:       in.Amount,
		Currency:     in.Currency,
		Notes:        in.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// Confirm godoc
// @Summary      Confirmar recepción del efectivo
// @Tags         cash-transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transferencia"
// @Success      200  {object}  dto.CommandResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cash-transfers/{id}/confirm [post]
func (h *CashTransferHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmCashTransfer(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID})
}

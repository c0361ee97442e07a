package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// PaymentHandler maneja cobros de clientes y pagos a proveedor (protegido).
type PaymentHandler struct {
	uc *ledger.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *ledger.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Receivable godoc
// @Summary      Cobrar venta al crédito
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPaymentRequest  true  "Cobro a registrar"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/receivable [post]
func (h *PaymentHandler) Receivable(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterReceivablePayment(c.Context(), ledger.PaymentInput{
		BranchID:   branchID,
		UserID:     GetUserID(c),
		DocumentID: in.DocumentID,
		PartyID:    in.PartyID,
		Amount:     in.Amount,
		Currency:   in.Currency,
		Payment:    dto.ToPaymentEntry(in.Payment),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// Payable godoc
// @Summary      Pagar compra al crédito
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPaymentRequest  true  "Pago a registrar"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/payable [post]
func (h *PaymentHandler) Payable(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterPayablePayment(c.Context(), ledger.PaymentInput{
		BranchID:   branchID,
		UserID:     GetUserID(c),
		DocumentID: in.DocumentID,
		PartyID:    in.PartyID,
		Amount:     in.Amount,
		Currency:   in.Currency,
		Payment:    dto.ToPaymentEntry(in.Payment),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

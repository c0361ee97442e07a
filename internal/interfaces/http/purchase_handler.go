package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// PurchaseHandler maneja las peticiones HTTP de compras (protegido).
type PurchaseHandler struct {
	uc *ledger.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *ledger.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar compra a proveedor
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessPurchaseRequest  true  "Compra a registrar"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.ProcessPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ProcessPurchase(c.Context(), ledger.PurchaseInput{
		BranchID:         branchID,
		UserID:           GetUserID(c),
		Items:            dto.ToPurchaseItems(in.Items),
		Total:            in.Total,
		Currency:         in.Currency,
		ExchangeRate:     in.ExchangeRate,
		DocType:          in.DocType,
		SupplierID:       in.SupplierID,
		SupplierName:     in.SupplierName,
		PaymentCondition: in.PaymentCondition,
		CreditDays:       in.CreditDays,
		Payments:         dto.ToPaymentEntries(in.Payments),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID, NegativeStock: out.NegativeStock})
}

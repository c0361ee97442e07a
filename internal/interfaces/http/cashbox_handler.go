package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// CashBoxHandler maneja apertura y cierre de caja (protegido).
type CashBoxHandler struct {
	uc *ledger.CashBoxUseCase
}

// NewCashBoxHandler construye el handler.
func NewCashBoxHandler(uc *ledger.CashBoxUseCase) *CashBoxHandler {
	return &CashBoxHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir caja
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCashBoxRequest  true  "Apertura"
// @Success      201   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cashbox/open [post]
func (h *CashBoxHandler) Open(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.OpenCashBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.OpenCashBox(c.Context(), ledger.OpenCashBoxInput{
		BranchID:     branchID,
		UserID:       GetUserID(c),
		OpeningCash:  in.OpeningCash,
		Notes:        in.Notes,
		BankBalances: dto.ToAccountBalances(in.BankBalances),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// Close godoc
// @Summary      Cerrar caja con arqueo
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseCashBoxRequest  true  "Cierre"
// @Success      200   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cashbox/close [post]
func (h *CashBoxHandler) Close(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.CloseCashBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CloseCashBox(c.Context(), ledger.CloseCashBoxInput{
		BranchID:      branchID,
		UserID:        GetUserID(c),
		CountedCash:   in.CountedCash,
		SystemCash:    in.SystemCash,
		SystemDigital: in.SystemDigital,
		Notes:         in.Notes,
		BankBalances:  dto.ToAccountBalances(in.BankBalances),
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID})
}

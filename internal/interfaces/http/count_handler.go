package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// CountHandler maneja sesiones de inventario físico (protegido).
type CountHandler struct {
	uc *ledger.CountUseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(uc *ledger.CountUseCase) *CountHandler {
	return &CountHandler{uc: uc}
}

// SaveDraft godoc
// @Summary      Guardar borrador de conteo físico
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryCountRequest  true  "Conteo"
// @Success      201   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/counts [post]
func (h *CountHandler) SaveDraft(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.InventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SaveDraft(c.Context(), ledger.CountInput{
		SessionID: in.SessionID,
		BranchID:  branchID,
		UserID:    GetUserID(c),
		Notes:     in.Notes,
		Counts:    in.Counts,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// Adjust godoc
// @Summary      Ajustar el stock al conteo físico (terminal)
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryCountRequest  true  "Conteo a aplicar"
// @Success      200   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/counts/adjust [post]
func (h *CountHandler) Adjust(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	if branchID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "branch_id requerido"})
	}
	var in dto.InventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustInventory(c.Context(), ledger.CountInput{
		SessionID: in.SessionID,
		BranchID:  branchID,
		UserID:    GetUserID(c),
		Notes:     in.Notes,
		Counts:    in.Counts,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID})
}

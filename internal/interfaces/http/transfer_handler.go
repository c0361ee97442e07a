package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// TransferHandler maneja el ciclo de traslados de stock entre sucursales
// (protegido).
type TransferHandler struct {
	uc *ledger.TransferUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *ledger.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Initiate godoc
// @Summary      Iniciar envío directo de stock
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseTransferRequest  true  "Traslado"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Initiate(c *fiber.Ctx) error {
	in, ok := h.parseTransfer(c)
	if !ok {
		return nil
	}
	out, err := h.uc.InitiateWarehouseTransfer(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// Request godoc
// @Summary      Solicitar stock a otra sucursal
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WarehouseTransferRequest  true  "Solicitud"
// @Success      201   {object}  dto.CommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers/request [post]
func (h *TransferHandler) Request(c *fiber.Ctx) error {
	in, ok := h.parseTransfer(c)
	if !ok {
		return nil
	}
	out, err := h.uc.RequestWarehouseTransfer(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CommandResponse{ID: out.ID})
}

// parseTransfer parsea el body común de Initiate/Request. Si devuelve false
// la respuesta de error ya fue escrita.
func (h *TransferHandler) parseTransfer(c *fiber.Ctx) (ledger.TransferInput, bool) {
	var in dto.WarehouseTransferRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return ledger.TransferInput{}, false
	}
	return ledger.TransferInput{
		FromBranchID: in.FromBranchID,
		ToBranchID:   in.ToBranchID,
		UserID:       GetUserID(c),
		Items:        dto.ToTransferItems(in.Items),
		Notes:        in.Notes,
	}, true
}

// Fulfill godoc
// @Summary      Despachar una solicitud de stock
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.FulfillTransferRequest  true  "Cantidades a despachar"
// @Success      200   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/fulfill [post]
func (h *TransferHandler) Fulfill(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.FulfillTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.FulfillTransferRequest(c.Context(), ledger.FulfillInput{
		TransferID:         id,
		UserID:             GetUserID(c),
		Quantities:         in.Quantities,
		AllowNegativeStock: in.AllowNegativeStock,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID})
}

// Confirm godoc
// @Summary      Confirmar recepción del traslado (mueve el stock)
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  dto.CommandResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/confirm [post]
func (h *TransferHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmWarehouseTransfer(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID, NegativeStock: out.NegativeStock})
}

// Reject godoc
// @Summary      Rechazar un traslado (terminal, sin efecto de stock)
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.RejectTransferRequest  false  "Motivo"
// @Success      200   {object}  dto.CommandResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/reject [post]
func (h *TransferHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectTransferRequest
	_ = c.BodyParser(&in) // body opcional
	out, err := h.uc.RejectWarehouseTransfer(c.Context(), c.Params("id"), GetUserID(c), in.Notes)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CommandResponse{ID: out.ID})
}

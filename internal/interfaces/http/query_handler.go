package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/dto"
	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
)

// QueryHandler expone las proyecciones de lectura del libro (protegido).
type QueryHandler struct {
	uc *ledger.QueryUseCase
}

// NewQueryHandler construye el handler.
func NewQueryHandler(uc *ledger.QueryUseCase) *QueryHandler {
	return &QueryHandler{uc: uc}
}

func pageParams(c *fiber.Ctx) (int, int) {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p.Limit, p.Offset
}

// dateRange lee from/to (RFC 3339 o YYYY-MM-DD); por defecto últimos 30 días.
func dateRange(c *fiber.Ctx) (time.Time, time.Time) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.Add(24 * time.Hour)
	if s := c.Query("from"); s != "" {
		if t, err := parseDate(s); err == nil {
			from = t
		}
	}
	if s := c.Query("to"); s != "" {
		if t, err := parseDate(s); err == nil {
			to = t
		}
	}
	return from, to
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// ListProducts godoc
// @Summary      Catálogo de productos con stock global
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Router       /api/products [get]
func (h *QueryHandler) ListProducts(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListProducts(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// BranchStock godoc
// @Summary      Existencias de la sucursal
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Router       /api/products/stock [get]
func (h *QueryHandler) BranchStock(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.BranchStock(GetBranchID(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListClients godoc
// @Summary      Clientes con crédito usado y saldo de billetera
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Router       /api/clients [get]
func (h *QueryHandler) ListClients(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListClients(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers godoc
// @Summary      Proveedores con cuenta por pagar
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Router       /api/suppliers [get]
func (h *QueryHandler) ListSuppliers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSuppliers(limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListBankAccounts godoc
// @Summary      Cuentas bancarias del negocio
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Router       /api/accounts [get]
func (h *QueryHandler) ListBankAccounts(c *fiber.Ctx) error {
	out, err := h.uc.ListBankAccounts()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SalesHistory godoc
// @Summary      Historial de ventas de la sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta"
// @Router       /api/sales [get]
func (h *QueryHandler) SalesHistory(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRange(c)
	out, err := h.uc.SalesHistory(GetBranchID(c), from, to, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// PurchasesHistory godoc
// @Summary      Historial de compras de la sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Router       /api/purchases [get]
func (h *QueryHandler) PurchasesHistory(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRange(c)
	out, err := h.uc.PurchasesHistory(GetBranchID(c), from, to, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CashMovements godoc
// @Summary      Libro de caja de la sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Router       /api/cash-movements [get]
func (h *QueryHandler) CashMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRange(c)
	out, err := h.uc.CashMovements(GetBranchID(c), from, to, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// StockMovements godoc
// @Summary      Kardex de la sucursal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Router       /api/stock-movements [get]
func (h *QueryHandler) StockMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRange(c)
	out, err := h.uc.StockMovements(GetBranchID(c), from, to, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CashPosition godoc
// @Summary      Posición de caja del período (ingresos - egresos)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashPositionResponse
// @Router       /api/cash-position [get]
func (h *QueryHandler) CashPosition(c *fiber.Ctx) error {
	from, to := dateRange(c)
	pos, err := h.uc.GetCashPosition(GetBranchID(c), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CashPositionResponse{
		BranchID: pos.BranchID,
		Ingresos: pos.Ingresos,
		Egresos:  pos.Egresos,
		Balance:  pos.Balance,
	})
}

// OpenCashBox godoc
// @Summary      Sesión de caja abierta de la sucursal
// @Tags         cashbox
// @Security     Bearer
// @Produce      json
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cashbox/current [get]
func (h *QueryHandler) OpenCashBox(c *fiber.Ctx) error {
	out, err := h.uc.OpenCashBox(GetBranchID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay caja abierta"})
	}
	return c.JSON(out)
}

// CashBoxHistory godoc
// @Summary      Historial de sesiones de caja
// @Tags         cashbox
// @Security     Bearer
// @Produce      json
// @Router       /api/cashbox/history [get]
func (h *QueryHandler) CashBoxHistory(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRange(c)
	out, err := h.uc.CashBoxHistory(GetBranchID(c), from, to, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// PendingTransfers godoc
// @Summary      Traslados REQUESTED o PENDING donde participa la sucursal
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Router       /api/transfers/pending [get]
func (h *QueryHandler) PendingTransfers(c *fiber.Ctx) error {
	out, err := h.uc.PendingTransfers(GetBranchID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// PendingCashTransfers godoc
// @Summary      Transferencias de efectivo PENDING de la sucursal
// @Tags         cash-transfers
// @Security     Bearer
// @Produce      json
// @Router       /api/cash-transfers/pending [get]
func (h *QueryHandler) PendingCashTransfers(c *fiber.Ctx) error {
	out, err := h.uc.PendingCashTransfers(GetBranchID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// CashInTransit godoc
// @Summary      Efectivo en tránsito saliente de la sucursal
// @Tags         cash-transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashInTransitResponse
// @Router       /api/cash-transfers/in-transit [get]
func (h *QueryHandler) CashInTransit(c *fiber.Ctx) error {
	branchID := GetBranchID(c)
	amount, err := h.uc.CashInTransit(branchID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.CashInTransitResponse{BranchID: branchID, Amount: amount})
}

// DraftCounts godoc
// @Summary      Borradores de conteo reanudables
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Router       /api/counts/drafts [get]
func (h *QueryHandler) DraftCounts(c *fiber.Ctx) error {
	out, err := h.uc.DraftCounts(GetBranchID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

package ledger

import (
	"time"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/entity"
	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// applyStockDelta muta el stock de sucursal y el total global del producto
// dentro de la transacción en curso y devuelve el stock de sucursal resultante.
// El caller debe haber obtenido product con GetForUpdate (orden de bloqueo:
// primero producto, luego fila de sucursal).
func applyStockDelta(l *repository.Ledger, product *entity.Product, branchID string, delta int64, now time.Time) (int64, error) {
	bs, err := l.BranchStocks.GetForUpdate(product.ID, branchID)
	if err != nil {
		return 0, err
	}
	bs.Quantity += delta
	bs.UpdatedAt = now
	if err := l.BranchStocks.Upsert(bs); err != nil {
		return 0, err
	}
	product.Stock += delta
	if err := l.Products.UpdateStock(product.ID, product.Stock); err != nil {
		return 0, err
	}
	return bs.Quantity, nil
}

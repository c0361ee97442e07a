package ledger

import (
	"context"

	"github.com/electromovil99-art/sapisoft-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el
// conjunto de repositorios atados a esa tx. Cada comando del libro corre
// completo dentro de un Run: o se aplican todos sus efectos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(l *repository.Ledger) error) error
}

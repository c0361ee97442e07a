package entity

import "time"

// Estados de la sesión de conteo físico.
const (
	ConteoBorrador = "DRAFT"    // conteo guardado, editable y reanudable
	ConteoAjustado = "ADJUSTED" // terminal: el stock fue corregido al conteo físico
)

// CountItem línea de conteo: stock del sistema al momento de contar, conteo
// físico y diferencia (físico - sistema).
type CountItem struct {
	ProductID     string
	Name          string
	SystemStock   int64
	PhysicalCount int64
	Difference    int64
}

// InventoryCountSession sesión de inventario físico. Los borradores se pueden
// guardar y retomar; al aplicar el ajuste la sesión queda ADJUSTED y el stock
// de cada producto se corrige al conteo físico con su movimiento de kardex.
type InventoryCountSession struct {
	ID        string
	BranchID  string
	Status    string // DRAFT | ADJUSTED
	Items     []CountItem
	Notes     string
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
}

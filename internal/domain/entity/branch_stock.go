package entity

import "time"

// BranchStock existencia de un producto en una sucursal. Product.Stock guarda
// el total global; esta fila es la partición por sucursal sobre la que operan
// ventas, compras, traslados y ajustes. Puede quedar negativa.
type BranchStock struct {
	ProductID string
	BranchID  string
	Quantity  int64
	UpdatedAt time.Time
}

package entity

import "time"

// Estados del traslado entre sucursales.
const (
	TrasladoSolicitado = "REQUESTED" // la sucursal destino pidió stock; nada se mueve aún
	TrasladoPendiente  = "PENDING"   // el origen se comprometió a enviar; stock aún sin mover
	TrasladoCompletado = "COMPLETED" // destino confirmó recepción; stock movido en ambas puntas
	TrasladoRechazado  = "REJECTED"  // terminal, sin efecto de stock
)

// TransferItem línea de traslado. OriginalRequestedQty conserva la cantidad
// pedida originalmente aun cuando el origen ajusta la cantidad al despachar.
type TransferItem struct {
	ProductID            string
	Name                 string
	Quantity             int64
	OriginalRequestedQty int64
}

// WarehouseTransfer traslado de stock entre dos sucursales. Dos flujos
// comparten el tipo: el envío directo (nace PENDING) y la solicitud del
// destino (nace REQUESTED y pasa a PENDING al despacharse).
type WarehouseTransfer struct {
	ID           string
	FromBranchID string
	ToBranchID   string
	Items        []TransferItem
	Status       string
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
	UpdatedAt    time.Time
	UpdatedBy    string
}

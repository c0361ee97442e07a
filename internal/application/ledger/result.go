package ledger

// CommandResult resultado de un comando que mutó el libro.
// NegativeStock lista los productos cuyo stock de sucursal quedó negativo:
// no es un error (la sobreventa está permitida) pero el caller debe mostrarlo
// como advertencia y conciliarlo luego con un ajuste de inventario.
type CommandResult struct {
	ID            string
	NegativeStock []string
}

func (r *CommandResult) flagIfNegative(productID string, resulting int64) {
	if resulting < 0 {
		r.NegativeStock = append(r.NegativeStock, productID)
	}
}

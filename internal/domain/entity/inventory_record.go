package entity

import "time"

// InventoryRecord existencia de un producto en una bodega (una fila por
// producto+bodega). Se crea junto con el producto: nunca existe un producto
// sin su registro de inventario inicial.
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	CreatedAt   time.Time
}

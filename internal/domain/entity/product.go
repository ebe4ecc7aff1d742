package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Es una entidad global: no pertenece a una
// bodega; sus existencias por bodega viven en InventoryRecord.
type Product struct {
	ID        string
	SKU       string // normalizado (trim + mayúsculas), único global
	Name      string
	Price     decimal.Decimal // precio de venta, decimal exacto
	CreatedAt time.Time
}

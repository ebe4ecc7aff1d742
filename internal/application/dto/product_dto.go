package dto

import "github.com/shopspring/decimal"

// CreateProductResponse respuesta de creación exitosa.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// InventoryRecordResponse existencia por bodega dentro del detalle de producto.
type InventoryRecordResponse struct {
	WarehouseID string `json:"warehouseId"`
	Quantity    int64  `json:"quantity"`
}

// ProductResponse detalle de un producto con sus existencias.
type ProductResponse struct {
	ID        string                    `json:"id"`
	SKU       string                    `json:"sku"`
	Name      string                    `json:"name"`
	Price     decimal.Decimal           `json:"price"`
	Inventory []InventoryRecordResponse `json:"inventory"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}

package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// InventoryRecordRepository define el puerto de persistencia para las
// existencias por bodega (DIP).
type InventoryRecordRepository interface {
	Create(record *entity.InventoryRecord) error
	ListByProduct(productID string) ([]*entity.InventoryRecord, error)
}

package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// WarehouseRepository define el puerto de consulta para Warehouse (DIP).
// Solo lectura: este servicio no crea ni modifica bodegas.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
}

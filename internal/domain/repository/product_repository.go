package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetBySKU espera el SKU ya normalizado; la normalización es responsabilidad
// de la capa de aplicación y debe ser la misma al escribir y al consultar.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
}

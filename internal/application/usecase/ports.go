package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que producto y existencia inicial se confirmen
// juntos o no se confirme ninguno. Nunca es una sesión compartida entre
// peticiones: cada Run abre y cierra su propia transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRecordRepository,
	) error) error
}

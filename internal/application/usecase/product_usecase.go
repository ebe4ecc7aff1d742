package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// requiredFields campos obligatorios del cuerpo de creación, en el orden en
// que se reportan cuando faltan.
var requiredFields = []string{"name", "sku", "price", "warehouseId", "initialQuantity"}

// ProductUseCase flujo de creación de productos: valida el cuerpo crudo y
// persiste el producto junto con su existencia inicial en una sola transacción.
type ProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRecordRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRecordRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
	}
}

// Create ejecuta la secuencia de creación. Los chequeos de SKU y bodega son
// consultivos: dos peticiones concurrentes con el mismo SKU pueden pasarlos
// ambas, y el respaldo real son los constraints de la BD al confirmar, que
// llegan aquí como domain.ErrIntegrity.
func (uc *ProductUseCase) Create(ctx context.Context, raw map[string]any) (*dto.CreateProductResponse, error) {
	// 1. Campos requeridos: se reportan todos los faltantes, no solo el primero.
	var missing []string
	for _, f := range requiredFields {
		if _, ok := raw[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, domain.Validation(domain.CodeMissingFields, "Missing fields: "+strings.Join(missing, ", "))
	}

	// 2. Precio como decimal exacto, nunca float binario.
	price, derr := parsePrice(raw["price"])
	if derr != nil {
		return nil, derr
	}
	if price.IsNegative() {
		return nil, domain.Validation(domain.CodeNegativePrice, "Price cannot be negative")
	}

	name, ok := raw["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, domain.Validation(domain.CodeInvalidName, "Invalid name")
	}
	rawSKU, ok := raw["sku"].(string)
	if !ok || strings.TrimSpace(rawSKU) == "" {
		return nil, domain.Validation(domain.CodeInvalidSKU, "Invalid SKU")
	}
	sku := NormalizeSKU(rawSKU)

	quantity, derr := parseQuantity(raw["initialQuantity"])
	if derr != nil {
		return nil, derr
	}

	// 3. Pre-chequeo consultivo de unicidad de SKU.
	existing, err := uc.productRepo.GetBySKU(sku)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if existing != nil {
		return nil, domain.ErrSKUExists
	}

	// 4. La bodega referenciada debe existir.
	warehouse, err := uc.warehouseRepo.GetByID(identifierString(raw["warehouseId"]))
	if err != nil {
		return nil, domain.Internal(err)
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	// 5. Producto + existencia inicial: ambos o ninguno. El ID se genera aquí
	// para que el insert de inventario lo referencie dentro de la misma tx.
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      strings.TrimSpace(name),
		Price:     price,
		CreatedAt: now,
	}
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRecordRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return inventoryRepo.Create(&entity.InventoryRecord{
			ProductID:   product.ID,
			WarehouseID: warehouse.ID,
			Quantity:    quantity,
			CreatedAt:   now,
		})
	})
	if err != nil {
		var txErr *domain.Error
		if errors.As(err, &txErr) {
			return nil, txErr
		}
		return nil, domain.Internal(err)
	}

	return &dto.CreateProductResponse{
		Message:   "Product created successfully",
		ProductID: product.ID,
	}, nil
}

// GetByID obtiene un producto con sus existencias por bodega. Devuelve nil
// sin error si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if product == nil {
		return nil, nil
	}
	records, err := uc.inventoryRepo.ListByProduct(product.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	inventory := make([]dto.InventoryRecordResponse, 0, len(records))
	for _, rec := range records {
		inventory = append(inventory, dto.InventoryRecordResponse{
			WarehouseID: rec.WarehouseID,
			Quantity:    rec.Quantity,
		})
	}
	return &dto.ProductResponse{
		ID:        product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     product.Price,
		Inventory: inventory,
	}, nil
}

// parsePrice convierte el valor crudo del precio a decimal exacto. Acepta
// número JSON (json.Number, el decoder usa UseNumber) o string numérico.
func parsePrice(v any) (decimal.Decimal, *domain.Error) {
	var s string
	switch val := v.(type) {
	case json.Number:
		s = val.String()
	case string:
		s = strings.TrimSpace(val)
	default:
		return decimal.Zero, domain.Validation(domain.CodeInvalidPrice, "Invalid price format")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.Validation(domain.CodeInvalidPrice, "Invalid price format")
	}
	return d, nil
}

// parseQuantity exige un entero no negativo. El flujo heredado dejaba pasar
// cualquier valor hasta la BD; con la taxonomía tipada eso sería un 500
// accidental en vez de un 400.
func parseQuantity(v any) (int64, *domain.Error) {
	var s string
	switch val := v.(type) {
	case json.Number:
		s = val.String()
	case string:
		s = strings.TrimSpace(val)
	default:
		return 0, domain.Validation(domain.CodeInvalidQuantity, "Invalid quantity")
	}
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil || q < 0 {
		return 0, domain.Validation(domain.CodeInvalidQuantity, "Invalid quantity")
	}
	return q, nil
}

// identifierString acepta string o número JSON como identificador; la
// convención de almacenamiento es string.
func identifierString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

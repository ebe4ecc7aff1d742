package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para armar el caso de uso real detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	bySKUErr error
}

func (m *memProductRepo) Create(p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	if m.bySKUErr != nil {
		return nil, m.bySKUErr
	}
	for _, p := range m.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (m *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return m.warehouses[id], nil
}

type memInventoryRepo struct {
	records []*entity.InventoryRecord
}

func (m *memInventoryRepo) Create(r *entity.InventoryRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *memInventoryRepo) ListByProduct(productID string) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	for _, r := range m.records {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

// memTxRunner aplica fn directo sobre los repos; commitErr simula la
// violación de integridad detectada al confirmar.
type memTxRunner struct {
	products  *memProductRepo
	inventory *memInventoryRepo
	commitErr error
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRecordRepository,
) error) error {
	snapshot := map[string]*entity.Product{}
	for id, p := range r.products.products {
		snapshot[id] = p
	}
	records := append([]*entity.InventoryRecord(nil), r.inventory.records...)
	if err := fn(r.products, r.inventory); err != nil {
		r.products.products = snapshot
		r.inventory.records = records
		return err
	}
	if r.commitErr != nil {
		r.products.products = snapshot
		r.inventory.records = records
		return r.commitErr
	}
	return nil
}

type testDeps struct {
	products  *memProductRepo
	inventory *memInventoryRepo
	tx        *memTxRunner
}

// buildTestApp arma una app Fiber con el router real y fakes de persistencia;
// la bodega "wh-1" existe de antemano.
func buildTestApp() (*fiber.App, *testDeps) {
	products := &memProductRepo{products: map[string]*entity.Product{}}
	inventory := &memInventoryRepo{}
	warehouses := &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"wh-1": {ID: "wh-1", Name: "Bodega Central"},
	}}
	tx := &memTxRunner{products: products, inventory: inventory}
	uc := usecase.NewProductUseCase(tx, products, warehouses, inventory)
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{ProductUC: uc, Log: log})
	return app, &testDeps{products: products, inventory: inventory, tx: tx}
}

// postProduct lanza POST /api/products con el cuerpo JSON dado.
func postProduct(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const validJSON = `{"name":"Widget","sku":"W-100","price":"19.99","warehouseId":"wh-1","initialQuantity":50}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestPostProducts_Creado201(t *testing.T) {
	app, deps := buildTestApp()

	resp := postProduct(t, app, validJSON)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Product created successfully", body["message"])
	productID, _ := body["productId"].(string)
	require.NotEmpty(t, productID)
	require.Len(t, deps.inventory.records, 1)

	// Lectura posterior: el producto expone su existencia inicial.
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)

	detail := decodeBody(t, getResp)
	assert.Equal(t, "W-100", detail["sku"])
	inventory, ok := detail["inventory"].([]any)
	require.True(t, ok)
	require.Len(t, inventory, 1)
	record := inventory[0].(map[string]any)
	assert.Equal(t, "wh-1", record["warehouseId"])
	assert.Equal(t, float64(50), record["quantity"])
}

func TestPostProducts_PrecioComoNumeroJSON(t *testing.T) {
	// El precio también puede llegar como número JSON; UseNumber evita el
	// redondeo por float64.
	app, deps := buildTestApp()

	resp := postProduct(t, app, `{"name":"Widget","sku":"W-200","price":19.99,"warehouseId":"wh-1","initialQuantity":1}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	require.Len(t, deps.products.products, 1)
	for _, p := range deps.products.products {
		assert.Equal(t, "19.99", p.Price.String())
	}
}

func TestPostProducts_CamposFaltantes400(t *testing.T) {
	app, _ := buildTestApp()

	resp := postProduct(t, app, `{"name":"Widget"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Missing fields: sku, price, warehouseId, initialQuantity", body["error"])
}

func TestPostProducts_PrecioInvalido400(t *testing.T) {
	app, _ := buildTestApp()

	resp := postProduct(t, app, `{"name":"Widget","sku":"W-100","price":"abc","warehouseId":"wh-1","initialQuantity":50}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid price format", body["error"])
}

func TestPostProducts_PrecioNegativo400(t *testing.T) {
	app, _ := buildTestApp()

	resp := postProduct(t, app, `{"name":"Widget","sku":"W-100","price":"-1","warehouseId":"wh-1","initialQuantity":50}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Price cannot be negative", body["error"])
}

func TestPostProducts_SKUDuplicado409(t *testing.T) {
	app, deps := buildTestApp()

	resp := postProduct(t, app, validJSON)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Variante de mayúsculas/espacios del mismo SKU.
	resp = postProduct(t, app, `{"name":"Widget","sku":" w-100 ","price":"19.99","warehouseId":"wh-1","initialQuantity":50}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "SKU already exists", body["error"])
	assert.Len(t, deps.products.products, 1, "el conteo de productos no debe cambiar")
}

func TestPostProducts_BodegaInexistente404(t *testing.T) {
	app, deps := buildTestApp()

	resp := postProduct(t, app, `{"name":"Widget","sku":"W-100","price":"19.99","warehouseId":"wh-99","initialQuantity":50}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Warehouse not found", body["error"])
	assert.Empty(t, deps.products.products)
}

func TestPostProducts_IntegridadAlConfirmar400(t *testing.T) {
	app, deps := buildTestApp()
	deps.tx.commitErr = domain.ErrIntegrity

	resp := postProduct(t, app, validJSON)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"la violación de integridad al confirmar mantiene el 400 histórico")
	body := decodeBody(t, resp)
	assert.Equal(t, "Database integrity error", body["error"])
	assert.Empty(t, deps.products.products)
}

func TestPostProducts_FallaInterna500_SinFiltrarDetalle(t *testing.T) {
	app, deps := buildTestApp()
	deps.products.bySKUErr = errors.New("conexión rechazada: 10.0.0.5:5432")

	resp := postProduct(t, app, validJSON)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Internal error: unexpected failure", body["error"])
	assert.NotContains(t, body["error"], "10.0.0.5", "el detalle interno no debe llegar al cliente")
}

func TestPostProducts_CuerpoInvalido400(t *testing.T) {
	app, _ := buildTestApp()

	resp := postProduct(t, app, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid JSON body", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/products/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_NoExiste404(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/nope", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Product not found", body["error"])
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto con su existencia inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "name, sku, price, warehouseId, initialQuantity"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	raw, err := decodeRawBody(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid JSON body"})
	}
	out, err := h.uc.Create(c.UserContext(), raw)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID con sus existencias
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing product id"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return h.respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Product not found"})
	}
	return c.JSON(out)
}

// decodeRawBody decodifica el cuerpo a un mapa crudo con UseNumber: los
// números llegan como json.Number y el precio conserva sus dígitos exactos
// hasta el parser decimal, sin pasar por float64.
func decodeRawBody(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// respondError traduce el error de dominio al status y cuerpo del contrato.
// El 409 se reserva para el pre-chequeo de SKU; la violación de integridad al
// confirmar mantiene el 400 histórico por compatibilidad con los clientes
// existentes. El detalle de una falla interna se registra y no se expone.
func (h *ProductHandler) respondError(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		derr = domain.Internal(err)
	}
	switch derr.Kind {
	case domain.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: derr.Message})
	case domain.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: derr.Message})
	case domain.KindConflict:
		if derr.Code == domain.CodeIntegrity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: derr.Message})
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: derr.Message})
	default:
		h.log.Error().Err(derr).Str("path", c.Path()).Msg("fallo no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: derr.Message})
	}
}

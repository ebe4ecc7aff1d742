package domain

// Taxonomía de errores del dominio (sin dependencias externas).
// Kind decide la familia; Code es estable y lo usa la capa HTTP para el mapeo a status.

// Kind familia de un error de dominio.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// Códigos estables para el mapeo HTTP.
const (
	CodeMissingFields     = "MISSING_FIELDS"
	CodeInvalidPrice      = "INVALID_PRICE"
	CodeNegativePrice     = "NEGATIVE_PRICE"
	CodeInvalidQuantity   = "INVALID_QUANTITY"
	CodeInvalidName       = "INVALID_NAME"
	CodeInvalidSKU        = "INVALID_SKU"
	CodeSKUExists         = "SKU_EXISTS"
	CodeWarehouseNotFound = "WAREHOUSE_NOT_FOUND"
	CodeIntegrity         = "INTEGRITY"
	CodeInternal          = "INTERNAL"
)

// Error error de dominio tipado. Message es apto para el cliente; la causa
// interna solo viaja por Unwrap y nunca llega al cuerpo de la respuesta.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Errores predefinidos del flujo de creación.
var (
	ErrSKUExists         = &Error{Kind: KindConflict, Code: CodeSKUExists, Message: "SKU already exists"}
	ErrWarehouseNotFound = &Error{Kind: KindNotFound, Code: CodeWarehouseNotFound, Message: "Warehouse not found"}
	ErrIntegrity         = &Error{Kind: KindConflict, Code: CodeIntegrity, Message: "Database integrity error"}
)

// Validation construye un error de validación con código estable y mensaje para el cliente.
func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// Internal envuelve una falla inesperada. El mensaje al cliente es genérico;
// el detalle queda en la causa para el log.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "Internal error: unexpected failure", cause: err}
}

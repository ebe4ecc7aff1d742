package usecase

import "strings"

// NormalizeSKU aplica la normalización canónica de SKU: sin espacios al borde
// y en mayúsculas. Es la única función de normalización y se usa tanto al
// escribir como al consultar; si las dos rutas divergen, la unicidad se rompe
// en silencio.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

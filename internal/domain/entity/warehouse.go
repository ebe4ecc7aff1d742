package entity

import "time"

// Warehouse bodega donde se almacena inventario. Este servicio solo la
// consulta; su ciclo de vida es de otro sistema.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}

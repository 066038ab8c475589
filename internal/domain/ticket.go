package domain

import "time"

// Estado enumerates ticket lifecycle states. The store accepts either value
// on update; no transition rules are enforced.
type Estado string

const (
	EstadoAbierto Estado = "ABIERTO"
	EstadoCerrado Estado = "CERRADO"
)

// Valid reports whether the state is one of the known values.
func (e Estado) Valid() bool {
	return e == EstadoAbierto || e == EstadoCerrado
}

// Prioridad enumerates ticket urgency.
type Prioridad string

const (
	PrioridadBaja  Prioridad = "BAJA"
	PrioridadMedia Prioridad = "MEDIA"
	PrioridadAlta  Prioridad = "ALTA"
)

// Valid reports whether the priority is one of the known values.
func (p Prioridad) Valid() bool {
	return p == PrioridadBaja || p == PrioridadMedia || p == PrioridadAlta
}

// Ticket is the aggregate for support requests. UsuarioID and CategoriaID
// are optional references. FechaCreacion is assigned once at creation and
// never updated afterwards.
type Ticket struct {
	ID            int64
	Titulo        string
	Descripcion   string
	Prioridad     Prioridad
	Estado        Estado
	FechaCreacion time.Time
	UsuarioID     *int64
	CategoriaID   *int64
}

package domain

// Rol distinguishes ticket-raising users from resolving technicians.
type Rol string

const (
	RolCliente Rol = "CLIENTE"
	RolTecnico Rol = "TECNICO"
)

// Valid reports whether the role is one of the known values.
func (r Rol) Valid() bool {
	return r == RolCliente || r == RolTecnico
}

// Usuario is the domain model for accounts that raise or resolve tickets.
// Password holds the bcrypt hash, never the plaintext value.
type Usuario struct {
	ID       int64
	Nombre   string
	Email    string
	Password string
	Rol      Rol
}

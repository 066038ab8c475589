package domain

// Categoria is a named grouping for tickets (e.g. Hardware, Software, Redes).
// Names are unique with a case-sensitive exact match.
type Categoria struct {
	ID     int64
	Nombre string
}

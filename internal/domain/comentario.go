package domain

import "time"

// Comentario is a timestamped note attached to a ticket. Both references are
// required, bound at creation and never reassigned; no update or delete is
// exposed for comments.
type Comentario struct {
	ID        int64
	Texto     string
	Fecha     time.Time
	TicketID  int64
	UsuarioID int64
}

package events

import (
	"time"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated     EventType = "ticket_created"
	EventTicketUpdated     EventType = "ticket_updated"
	EventTicketDeleted     EventType = "ticket_deleted"
	EventComentarioCreated EventType = "comentario_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Titulo    string           `json:"titulo"`
	Prioridad domain.Prioridad `json:"prioridad"`
	Estado    domain.Estado    `json:"estado"`
	UsuarioID *int64           `json:"usuario_id,omitempty"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	Titulo    string           `json:"titulo"`
	Prioridad domain.Prioridad `json:"prioridad"`
	Estado    domain.Estado    `json:"estado"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	Titulo string `json:"titulo"`
}

// ComentarioCreatedPayload payload.
type ComentarioCreatedPayload struct {
	ComentarioID int64  `json:"comentario_id"`
	UsuarioID    int64  `json:"usuario_id"`
	TextoPreview string `json:"texto_preview"`
}

package dto

import (
	"time"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// TicketRequest payload for create and full-replace update. Estado is
// optional on create and defaults to ABIERTO; the reference fields are only
// honored on create.
type TicketRequest struct {
	Titulo      string           `json:"titulo"`
	Descripcion string           `json:"descripcion"`
	Prioridad   domain.Prioridad `json:"prioridad"`
	Estado      domain.Estado    `json:"estado"`
	UsuarioID   *int64           `json:"usuarioId"`
	CategoriaID *int64           `json:"categoriaId"`
}

// TicketResponse wire representation.
type TicketResponse struct {
	ID            int64            `json:"id"`
	Titulo        string           `json:"titulo"`
	Descripcion   string           `json:"descripcion"`
	Prioridad     domain.Prioridad `json:"prioridad"`
	Estado        domain.Estado    `json:"estado"`
	FechaCreacion time.Time        `json:"fechaCreacion"`
	UsuarioID     *int64           `json:"usuarioId"`
	CategoriaID   *int64           `json:"categoriaId"`
}

// NewTicketResponse maps a domain ticket to its wire form.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID,
		Titulo:        ticket.Titulo,
		Descripcion:   ticket.Descripcion,
		Prioridad:     ticket.Prioridad,
		Estado:        ticket.Estado,
		FechaCreacion: ticket.FechaCreacion,
		UsuarioID:     ticket.UsuarioID,
		CategoriaID:   ticket.CategoriaID,
	}
}

// NewTicketListResponse maps a slice of domain tickets.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, NewTicketResponse(&tickets[i]))
	}
	return result
}

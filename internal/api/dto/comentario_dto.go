package dto

import (
	"time"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// CreateComentarioRequest payload. The ticket id comes from the path.
type CreateComentarioRequest struct {
	Texto     string `json:"texto"`
	UsuarioID int64  `json:"usuarioId"`
}

// ComentarioResponse wire representation.
type ComentarioResponse struct {
	ID        int64     `json:"id"`
	Texto     string    `json:"texto"`
	Fecha     time.Time `json:"fecha"`
	TicketID  int64     `json:"ticketId"`
	UsuarioID int64     `json:"usuarioId"`
}

// NewComentarioResponse maps a domain comment to its wire form.
func NewComentarioResponse(comentario *domain.Comentario) ComentarioResponse {
	return ComentarioResponse{
		ID:        comentario.ID,
		Texto:     comentario.Texto,
		Fecha:     comentario.Fecha,
		TicketID:  comentario.TicketID,
		UsuarioID: comentario.UsuarioID,
	}
}

// NewComentarioListResponse maps a slice of domain comments.
func NewComentarioListResponse(comentarios []domain.Comentario) []ComentarioResponse {
	result := make([]ComentarioResponse, 0, len(comentarios))
	for i := range comentarios {
		result = append(result, NewComentarioResponse(&comentarios[i]))
	}
	return result
}

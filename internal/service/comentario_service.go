package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/events"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// ComentarioService manages the comment thread of a ticket.
type ComentarioService struct {
	comentarios repository.ComentarioRepository
	tickets     repository.TicketRepository
	usuarios    repository.UsuarioRepository
	dispatcher  events.Dispatcher
}

// ComentarioDependencies bundles repositories for the comment service.
type ComentarioDependencies struct {
	ComentarioRepo repository.ComentarioRepository
	TicketRepo     repository.TicketRepository
	UsuarioRepo    repository.UsuarioRepository
	Dispatcher     events.Dispatcher
}

// NewComentarioService builds the service.
func NewComentarioService(deps ComentarioDependencies) *ComentarioService {
	return &ComentarioService{
		comentarios: deps.ComentarioRepo,
		tickets:     deps.TicketRepo,
		usuarios:    deps.UsuarioRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// ListByTicket returns the comments of a ticket ordered by ascending
// creation time.
func (s *ComentarioService) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comentario, error) {
	return s.comentarios.ListByTicket(ctx, ticketID)
}

// Create attaches a comment to a ticket. Both references must resolve and
// the text must be non-blank after trimming; any failed check is a
// validation error, nothing is persisted.
func (s *ComentarioService) Create(ctx context.Context, ticketID, usuarioID int64, texto string) (*domain.Comentario, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, errorutil.NewValidationError("el texto del comentario no puede estar vacío", nil)
	}

	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewValidationError(
				fmt.Sprintf("ticket no encontrado con id: %d", ticketID),
				map[string]any{"ticketId": ticketID},
			)
		}
		return nil, err
	}

	if _, err := s.usuarios.GetByID(ctx, usuarioID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewValidationError(
				fmt.Sprintf("usuario no encontrado con id: %d", usuarioID),
				map[string]any{"usuarioId": usuarioID},
			)
		}
		return nil, err
	}

	comentario := &domain.Comentario{
		Texto:     texto,
		Fecha:     time.Now().UTC(),
		TicketID:  ticketID,
		UsuarioID: usuarioID,
	}
	if err := s.comentarios.Create(ctx, comentario); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventComentarioCreated,
			TicketID:  ticketID,
			Timestamp: time.Now(),
			Payload: events.ComentarioCreatedPayload{
				ComentarioID: comentario.ID,
				UsuarioID:    usuarioID,
				TextoPreview: textPreview(texto, 120),
			},
		})
	}
	return comentario, nil
}

// textPreview truncates on rune boundaries so accented text never yields an
// invalid UTF-8 payload.
func textPreview(texto string, max int) string {
	runes := []rune(texto)
	if len(runes) <= max {
		return texto
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

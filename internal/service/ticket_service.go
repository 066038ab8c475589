package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/events"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// TicketService coordinates ticket CRUD.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketCreateInput describes the ticket creation payload. Estado is
// optional and defaults to ABIERTO.
type TicketCreateInput struct {
	Titulo      string
	Descripcion string
	Prioridad   domain.Prioridad
	Estado      domain.Estado
	UsuarioID   *int64
	CategoriaID *int64
}

// TicketUpdateInput describes the full-replace update payload. Exactly these
// four fields are overwritten; id, fecha_creacion and both references are
// preserved unconditionally.
type TicketUpdateInput struct {
	Titulo      string
	Descripcion string
	Prioridad   domain.Prioridad
	Estado      domain.Estado
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// ListAll returns every ticket.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// GetByID returns the ticket or pgx.ErrNoRows when absent.
func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// Create persists a new ticket. Titulo and descripcion are stored as
// received, whitespace included. The creation timestamp is the current
// server time and is never updated afterwards.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if !input.Prioridad.Valid() {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("prioridad inválida: %s", input.Prioridad),
			map[string]any{"prioridad": string(input.Prioridad)},
		)
	}

	estado := input.Estado
	if estado == "" {
		estado = domain.EstadoAbierto
	}
	if !estado.Valid() {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("estado inválido: %s", estado),
			map[string]any{"estado": string(estado)},
		)
	}

	ticket := &domain.Ticket{
		Titulo:        input.Titulo,
		Descripcion:   input.Descripcion,
		Prioridad:     input.Prioridad,
		Estado:        estado,
		FechaCreacion: time.Now().UTC(),
		UsuarioID:     input.UsuarioID,
		CategoriaID:   input.CategoriaID,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Titulo:    ticket.Titulo,
			Prioridad: ticket.Prioridad,
			Estado:    ticket.Estado,
			UsuarioID: ticket.UsuarioID,
		},
	})
	return ticket, nil
}

// Update overwrites titulo, descripcion, prioridad and estado of an existing
// ticket. Returns pgx.ErrNoRows when no ticket has the given id.
func (s *TicketService) Update(ctx context.Context, id int64, input TicketUpdateInput) (*domain.Ticket, error) {
	if !input.Prioridad.Valid() {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("prioridad inválida: %s", input.Prioridad),
			map[string]any{"prioridad": string(input.Prioridad)},
		)
	}
	if !input.Estado.Valid() {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("estado inválido: %s", input.Estado),
			map[string]any{"estado": string(input.Estado)},
		)
	}

	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.Titulo = input.Titulo
	ticket.Descripcion = input.Descripcion
	ticket.Prioridad = input.Prioridad
	ticket.Estado = input.Estado

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			Titulo:    ticket.Titulo,
			Prioridad: ticket.Prioridad,
			Estado:    ticket.Estado,
		},
	})
	return ticket, nil
}

// Delete removes a ticket by id. Returns whether a ticket existed and was
// removed; a missing id is reported as false, not as an error.
func (s *TicketService) Delete(ctx context.Context, id int64) (bool, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	deleted, err := s.tickets.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketDeleted,
			TicketID: id,
			Payload:  events.TicketDeletedPayload{Titulo: ticket.Titulo},
		})
	}
	return deleted, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

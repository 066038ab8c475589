package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (titulo, descripcion, prioridad, estado, fecha_creacion, usuario_id, categoria_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.Titulo,
		ticket.Descripcion,
		ticket.Prioridad,
		ticket.Estado,
		ticket.FechaCreacion,
		ticket.UsuarioID,
		ticket.CategoriaID,
	).Scan(&ticket.ID)
}

// Update overwrites the four mutable fields only. fecha_creacion and both
// references are never touched here.
func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET titulo=$1, descripcion=$2, prioridad=$3, estado=$4
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Titulo,
		ticket.Descripcion,
		ticket.Prioridad,
		ticket.Estado,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT id, titulo, descripcion, prioridad, estado, fecha_creacion, usuario_id, categoria_id
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Titulo,
		&ticket.Descripcion,
		&ticket.Prioridad,
		&ticket.Estado,
		&ticket.FechaCreacion,
		&ticket.UsuarioID,
		&ticket.CategoriaID,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	const query = `
        SELECT id, titulo, descripcion, prioridad, estado, fecha_creacion, usuario_id, categoria_id
        FROM tickets ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM tickets WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Titulo,
			&ticket.Descripcion,
			&ticket.Prioridad,
			&ticket.Estado,
			&ticket.FechaCreacion,
			&ticket.UsuarioID,
			&ticket.CategoriaID,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

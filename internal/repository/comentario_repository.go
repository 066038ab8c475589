package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// ComentarioRepository manages ticket comments. Comments are append-only;
// no update or delete is exposed.
type ComentarioRepository interface {
	Create(ctx context.Context, comentario *domain.Comentario) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comentario, error)
}

type comentarioRepository struct {
	pool *pgxpool.Pool
}

// NewComentarioRepository builds repository.
func NewComentarioRepository(pool *pgxpool.Pool) ComentarioRepository {
	return &comentarioRepository{pool: pool}
}

func (r *comentarioRepository) Create(ctx context.Context, comentario *domain.Comentario) error {
	const query = `
        INSERT INTO comentarios (texto, fecha, ticket_id, usuario_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		comentario.Texto,
		comentario.Fecha,
		comentario.TicketID,
		comentario.UsuarioID,
	).Scan(&comentario.ID)
}

func (r *comentarioRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comentario, error) {
	const query = `
        SELECT id, texto, fecha, ticket_id, usuario_id
        FROM comentarios WHERE ticket_id=$1 ORDER BY fecha ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comentario
	for rows.Next() {
		var comentario domain.Comentario
		if err := rows.Scan(
			&comentario.ID,
			&comentario.Texto,
			&comentario.Fecha,
			&comentario.TicketID,
			&comentario.UsuarioID,
		); err != nil {
			return nil, err
		}
		result = append(result, comentario)
	}
	return result, rows.Err()
}

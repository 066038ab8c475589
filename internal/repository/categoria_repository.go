package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// CategoriaRepository defines persistence access for ticket categories.
type CategoriaRepository interface {
	Create(ctx context.Context, categoria *domain.Categoria) error
	GetByID(ctx context.Context, id int64) (*domain.Categoria, error)
	List(ctx context.Context) ([]domain.Categoria, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
}

type categoriaRepository struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository returns a Postgres-backed implementation.
func NewCategoriaRepository(pool *pgxpool.Pool) CategoriaRepository {
	return &categoriaRepository{pool: pool}
}

func (r *categoriaRepository) Create(ctx context.Context, categoria *domain.Categoria) error {
	const query = `
        INSERT INTO categorias (nombre)
        VALUES ($1)
        RETURNING id`
	return r.pool.QueryRow(ctx, query, categoria.Nombre).Scan(&categoria.ID)
}

func (r *categoriaRepository) GetByID(ctx context.Context, id int64) (*domain.Categoria, error) {
	const query = `SELECT id, nombre FROM categorias WHERE id=$1`
	var categoria domain.Categoria
	if err := r.pool.QueryRow(ctx, query, id).Scan(&categoria.ID, &categoria.Nombre); err != nil {
		return nil, err
	}
	return &categoria, nil
}

func (r *categoriaRepository) List(ctx context.Context) ([]domain.Categoria, error) {
	const query = `SELECT id, nombre FROM categorias ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Categoria
	for rows.Next() {
		var categoria domain.Categoria
		if err := rows.Scan(&categoria.ID, &categoria.Nombre); err != nil {
			return nil, err
		}
		result = append(result, categoria)
	}
	return result, rows.Err()
}

func (r *categoriaRepository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM categorias WHERE nombre=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, nombre).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

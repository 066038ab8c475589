package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// UsuarioRepository defines persistence access for user accounts.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) error
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	List(ctx context.Context) ([]domain.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type usuarioRepository struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository returns a Postgres-backed implementation.
func NewUsuarioRepository(pool *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepository{pool: pool}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	const query = `
        INSERT INTO usuarios (nombre, email, password, rol)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		usuario.Nombre,
		usuario.Email,
		usuario.Password,
		usuario.Rol,
	).Scan(&usuario.ID)
}

func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	const query = `
        SELECT id, nombre, email, password, rol
        FROM usuarios WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	const query = `
        SELECT id, nombre, email, password, rol
        FROM usuarios WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *usuarioRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Usuario, error) {
	var usuario domain.Usuario
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&usuario.ID,
		&usuario.Nombre,
		&usuario.Email,
		&usuario.Password,
		&usuario.Rol,
	); err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	const query = `
        SELECT id, nombre, email, password, rol
        FROM usuarios ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsuarios(rows)
}

func (r *usuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanUsuarios(rows pgx.Rows) ([]domain.Usuario, error) {
	var result []domain.Usuario
	for rows.Next() {
		var usuario domain.Usuario
		if err := rows.Scan(
			&usuario.ID,
			&usuario.Nombre,
			&usuario.Email,
			&usuario.Password,
			&usuario.Rol,
		); err != nil {
			return nil, err
		}
		result = append(result, usuario)
	}
	return result, rows.Err()
}

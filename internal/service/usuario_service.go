package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-tickets/helpdesk-service/internal/auth"
	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// UsuarioService coordinates account listing, signup and the login check.
type UsuarioService struct {
	usuarios   repository.UsuarioRepository
	bcryptCost int
}

// UsuarioCreateInput describes the signup payload.
type UsuarioCreateInput struct {
	Nombre   string
	Email    string
	Password string
	Rol      domain.Rol
}

// NewUsuarioService builds the service.
func NewUsuarioService(usuarios repository.UsuarioRepository, bcryptCost int) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, bcryptCost: bcryptCost}
}

// ListAll returns every user, no ordering guarantee.
func (s *UsuarioService) ListAll(ctx context.Context) ([]domain.Usuario, error) {
	return s.usuarios.List(ctx)
}

// GetByID returns the user or pgx.ErrNoRows when absent.
func (s *UsuarioService) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	return s.usuarios.GetByID(ctx, id)
}

// FindByEmail returns the user or pgx.ErrNoRows when absent. Used internally,
// not exposed as its own endpoint.
func (s *UsuarioService) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	return s.usuarios.GetByEmail(ctx, email)
}

// Create persists a new user. The email must not already be registered. The
// existence check is best effort; the unique constraint on usuarios.email is
// the real enforcer under concurrent signups.
func (s *UsuarioService) Create(ctx context.Context, input UsuarioCreateInput) (*domain.Usuario, error) {
	if !input.Rol.Valid() {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("rol inválido: %s", input.Rol),
			map[string]any{"rol": string(input.Rol)},
		)
	}

	exists, err := s.usuarios.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("ya existe un usuario con el email: %s", input.Email),
			map[string]any{"email": input.Email},
		)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	usuario := &domain.Usuario{
		Nombre:   input.Nombre,
		Email:    input.Email,
		Password: hash,
		Rol:      input.Rol,
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Login returns the matching user only when both email and password match an
// existing record. A mismatch returns (nil, nil): absence of a match is not
// an error, the caller maps it to an unauthorized response.
func (s *UsuarioService) Login(ctx context.Context, email, password string) (*domain.Usuario, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := auth.ComparePassword(usuario.Password, password); err != nil {
		return nil, nil
	}
	return usuario, nil
}

package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sistema-tickets/helpdesk-service/internal/auth"
	"github.com/sistema-tickets/helpdesk-service/internal/config"
	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
)

// Default category names created on first start.
var defaultCategorias = []string{"Hardware", "Software", "Redes"}

// Dependencies bundles the repositories the seed writes through.
type Dependencies struct {
	UsuarioRepo   repository.UsuarioRepository
	CategoriaRepo repository.CategoriaRepository
}

// Seed creates the default categories and the admin account when they do not
// exist yet. It is idempotent: every create is guarded by an existence check,
// so running it on every process start is safe.
func Seed(ctx context.Context, cfg config.SeedConfig, bcryptCost int, deps Dependencies, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Info("seed disabled; skipping")
		return nil
	}

	for _, nombre := range defaultCategorias {
		exists, err := deps.CategoriaRepo.ExistsByNombre(ctx, nombre)
		if err != nil {
			return fmt.Errorf("seed categoria %s: %w", nombre, err)
		}
		if exists {
			continue
		}
		categoria := &domain.Categoria{Nombre: nombre}
		if err := deps.CategoriaRepo.Create(ctx, categoria); err != nil {
			return fmt.Errorf("seed categoria %s: %w", nombre, err)
		}
		logger.Info("seeded categoria", zap.String("nombre", nombre))
	}

	exists, err := deps.UsuarioRepo.ExistsByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	admin := &domain.Usuario{
		Nombre:   cfg.AdminNombre,
		Email:    cfg.AdminEmail,
		Password: hash,
		Rol:      domain.RolTecnico,
	}
	if err := deps.UsuarioRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	logger.Info("seeded admin usuario", zap.String("email", cfg.AdminEmail))
	return nil
}

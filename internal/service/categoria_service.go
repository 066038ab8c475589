package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/persistence"
	"github.com/sistema-tickets/helpdesk-service/internal/repository"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

const categoriasCacheKey = "categorias:all"

// CategoriaService manages ticket categories. Categories change rarely
// (seeded at startup, created occasionally), so the full listing is cached
// in Redis with a TTL and invalidated on create. The cache is best effort.
type CategoriaService struct {
	categorias repository.CategoriaRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
}

// NewCategoriaService builds the service. cache may be nil.
func NewCategoriaService(categorias repository.CategoriaRepository, cache *persistence.Redis, cacheTTL time.Duration) *CategoriaService {
	return &CategoriaService{categorias: categorias, cache: cache, cacheTTL: cacheTTL}
}

// ListAll returns every category.
func (s *CategoriaService) ListAll(ctx context.Context) ([]domain.Categoria, error) {
	if cached, ok := s.cache.GetString(ctx, categoriasCacheKey); ok {
		var result []domain.Categoria
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	result, err := s.categorias.List(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		s.cache.SetString(ctx, categoriasCacheKey, string(encoded), s.cacheTTL)
	}
	return result, nil
}

// GetByID returns the category or pgx.ErrNoRows when absent.
func (s *CategoriaService) GetByID(ctx context.Context, id int64) (*domain.Categoria, error) {
	return s.categorias.GetByID(ctx, id)
}

// Create persists a new category. Names are unique with a case-sensitive
// exact match; the check is best effort and the unique constraint on
// categorias.nombre decides under concurrent creates.
func (s *CategoriaService) Create(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error) {
	exists, err := s.categorias.ExistsByNombre(ctx, categoria.Nombre)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorutil.NewValidationError(
			fmt.Sprintf("ya existe una categoría con el nombre: %s", categoria.Nombre),
			map[string]any{"nombre": categoria.Nombre},
		)
	}

	if err := s.categorias.Create(ctx, categoria); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, categoriasCacheKey)
	return categoria, nil
}

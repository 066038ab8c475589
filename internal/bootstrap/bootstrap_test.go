package bootstrap

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sistema-tickets/helpdesk-service/internal/config"
	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

type seedUsuarioRepo struct {
	nextID  int64
	byEmail map[string]domain.Usuario
	creates int
}

func (r *seedUsuarioRepo) Create(_ context.Context, u *domain.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	r.byEmail[u.Email] = *u
	r.creates++
	return nil
}

func (r *seedUsuarioRepo) GetByID(context.Context, int64) (*domain.Usuario, error) {
	return nil, pgx.ErrNoRows
}

func (r *seedUsuarioRepo) GetByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *seedUsuarioRepo) List(context.Context) ([]domain.Usuario, error) { return nil, nil }

func (r *seedUsuarioRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type seedCategoriaRepo struct {
	nextID   int64
	byNombre map[string]domain.Categoria
	creates  int
}

func (r *seedCategoriaRepo) Create(_ context.Context, c *domain.Categoria) error {
	r.nextID++
	c.ID = r.nextID
	r.byNombre[c.Nombre] = *c
	r.creates++
	return nil
}

func (r *seedCategoriaRepo) GetByID(context.Context, int64) (*domain.Categoria, error) {
	return nil, pgx.ErrNoRows
}

func (r *seedCategoriaRepo) List(context.Context) ([]domain.Categoria, error) { return nil, nil }

func (r *seedCategoriaRepo) ExistsByNombre(_ context.Context, nombre string) (bool, error) {
	_, ok := r.byNombre[nombre]
	return ok, nil
}

func seedConfig() config.SeedConfig {
	return config.SeedConfig{
		Enabled:       true,
		AdminNombre:   "Administrador",
		AdminEmail:    "admin@test.com",
		AdminPassword: "1234",
	}
}

func TestSeed_CreatesDefaults(t *testing.T) {
	t.Parallel()

	usuarios := &seedUsuarioRepo{byEmail: make(map[string]domain.Usuario)}
	categorias := &seedCategoriaRepo{byNombre: make(map[string]domain.Categoria)}

	err := Seed(context.Background(), seedConfig(), 4, Dependencies{
		UsuarioRepo:   usuarios,
		CategoriaRepo: categorias,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	for _, nombre := range []string{"Hardware", "Software", "Redes"} {
		if _, ok := categorias.byNombre[nombre]; !ok {
			t.Errorf("categoria %s not seeded", nombre)
		}
	}
	admin, ok := usuarios.byEmail["admin@test.com"]
	if !ok {
		t.Fatal("admin usuario not seeded")
	}
	if admin.Rol != domain.RolTecnico {
		t.Errorf("admin Rol = %s, want TECNICO", admin.Rol)
	}
	if admin.Password == "1234" {
		t.Error("admin password stored as plaintext")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	t.Parallel()

	usuarios := &seedUsuarioRepo{byEmail: make(map[string]domain.Usuario)}
	categorias := &seedCategoriaRepo{byNombre: make(map[string]domain.Categoria)}
	deps := Dependencies{UsuarioRepo: usuarios, CategoriaRepo: categorias}

	for i := 0; i < 2; i++ {
		if err := Seed(context.Background(), seedConfig(), 4, deps, zap.NewNop()); err != nil {
			t.Fatalf("Seed() run %d error = %v", i+1, err)
		}
	}

	if categorias.creates != 3 {
		t.Errorf("categoria creates = %d, want 3", categorias.creates)
	}
	if usuarios.creates != 1 {
		t.Errorf("usuario creates = %d, want 1", usuarios.creates)
	}
}

func TestSeed_Disabled(t *testing.T) {
	t.Parallel()

	usuarios := &seedUsuarioRepo{byEmail: make(map[string]domain.Usuario)}
	categorias := &seedCategoriaRepo{byNombre: make(map[string]domain.Categoria)}

	cfg := seedConfig()
	cfg.Enabled = false
	if err := Seed(context.Background(), cfg, 4, Dependencies{
		UsuarioRepo:   usuarios,
		CategoriaRepo: categorias,
	}, zap.NewNop()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if categorias.creates != 0 || usuarios.creates != 0 {
		t.Errorf("seed ran while disabled: %d categorias, %d usuarios", categorias.creates, usuarios.creates)
	}
}

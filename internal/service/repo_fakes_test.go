package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/sistema-tickets/helpdesk-service/internal/domain"
)

// In-memory repository fakes. They mirror the store contract the Postgres
// implementations expose: pgx.ErrNoRows for missing rows, ids assigned on
// create, ascending fecha ordering for comment listings.

type memUsuarioRepo struct {
	nextID   int64
	usuarios map[int64]domain.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{usuarios: make(map[int64]domain.Usuario)}
}

func (r *memUsuarioRepo) Create(_ context.Context, usuario *domain.Usuario) error {
	r.nextID++
	usuario.ID = r.nextID
	r.usuarios[usuario.ID] = *usuario
	return nil
}

func (r *memUsuarioRepo) GetByID(_ context.Context, id int64) (*domain.Usuario, error) {
	usuario, ok := r.usuarios[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &usuario, nil
}

func (r *memUsuarioRepo) GetByEmail(_ context.Context, email string) (*domain.Usuario, error) {
	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			u := usuario
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUsuarioRepo) List(_ context.Context) ([]domain.Usuario, error) {
	result := make([]domain.Usuario, 0, len(r.usuarios))
	for _, usuario := range r.usuarios {
		result = append(result, usuario)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memUsuarioRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, usuario := range r.usuarios {
		if usuario.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memCategoriaRepo struct {
	nextID     int64
	categorias map[int64]domain.Categoria
}

func newMemCategoriaRepo() *memCategoriaRepo {
	return &memCategoriaRepo{categorias: make(map[int64]domain.Categoria)}
}

func (r *memCategoriaRepo) Create(_ context.Context, categoria *domain.Categoria) error {
	r.nextID++
	categoria.ID = r.nextID
	r.categorias[categoria.ID] = *categoria
	return nil
}

func (r *memCategoriaRepo) GetByID(_ context.Context, id int64) (*domain.Categoria, error) {
	categoria, ok := r.categorias[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &categoria, nil
}

func (r *memCategoriaRepo) List(_ context.Context) ([]domain.Categoria, error) {
	result := make([]domain.Categoria, 0, len(r.categorias))
	for _, categoria := range r.categorias {
		result = append(result, categoria)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memCategoriaRepo) ExistsByNombre(_ context.Context, nombre string) (bool, error) {
	for _, categoria := range r.categorias {
		if categoria.Nombre == nombre {
			return true, nil
		}
	}
	return false, nil
}

type memTicketRepo struct {
	nextID  int64
	tickets map[int64]domain.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{tickets: make(map[int64]domain.Ticket)}
}

func (r *memTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.nextID++
	ticket.ID = r.nextID
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := r.tickets[ticket.ID]
	stored.Titulo = ticket.Titulo
	stored.Descripcion = ticket.Descripcion
	stored.Prioridad = ticket.Prioridad
	stored.Estado = ticket.Estado
	r.tickets[ticket.ID] = stored
	return nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *memTicketRepo) List(_ context.Context) ([]domain.Ticket, error) {
	result := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		result = append(result, ticket)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memTicketRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.tickets[id]; !ok {
		return false, nil
	}
	delete(r.tickets, id)
	return true, nil
}

type memComentarioRepo struct {
	nextID      int64
	comentarios []domain.Comentario
}

func newMemComentarioRepo() *memComentarioRepo {
	return &memComentarioRepo{}
}

func (r *memComentarioRepo) Create(_ context.Context, comentario *domain.Comentario) error {
	r.nextID++
	comentario.ID = r.nextID
	r.comentarios = append(r.comentarios, *comentario)
	return nil
}

func (r *memComentarioRepo) ListByTicket(_ context.Context, ticketID int64) ([]domain.Comentario, error) {
	var result []domain.Comentario
	for _, comentario := range r.comentarios {
		if comentario.TicketID == ticketID {
			result = append(result, comentario)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Fecha.Equal(result[j].Fecha) {
			return result[i].ID < result[j].ID
		}
		return result[i].Fecha.Before(result[j].Fecha)
	})
	return result, nil
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Comentarios *handlers.ComentariosHandler
	Categorias  *handlers.CategoriasHandler
	Usuarios    *handlers.UsuariosHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	tickets := api.Group("/tickets")
	tickets.Get("/", cfg.Tickets.List)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Delete)

	tickets.Get("/:ticketId/comentarios", cfg.Comentarios.List)
	tickets.Post("/:ticketId/comentarios", cfg.Comentarios.Create)

	categorias := api.Group("/categorias")
	categorias.Get("/", cfg.Categorias.List)
	categorias.Post("/", cfg.Categorias.Create)
	categorias.Get("/:id", cfg.Categorias.Get)

	usuarios := api.Group("/usuarios")
	usuarios.Get("/", cfg.Usuarios.List)
	usuarios.Post("/", cfg.Usuarios.Create)
	usuarios.Post("/login", cfg.Usuarios.Login)
	usuarios.Get("/:id", cfg.Usuarios.Get)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/api/dto"
	"github.com/sistema-tickets/helpdesk-service/internal/service"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// TicketsHandler exposes ticket CRUD.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// List handles GET /api/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketListResponse(tickets))
}

// Get handles GET /api/tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.tickets.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Create handles POST /api/tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Titulo == "" || req.Descripcion == "" || req.Prioridad == "" {
		return errorutil.NewValidationError("titulo, descripcion y prioridad son obligatorios", nil)
	}

	ticket, err := h.tickets.Create(c.UserContext(), service.TicketCreateInput{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Prioridad:   req.Prioridad,
		Estado:      req.Estado,
		UsuarioID:   req.UsuarioID,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketResponse(ticket))
}

// Update handles PUT /api/tickets/:id. Full replace of the four mutable
// fields; everything else on the stored ticket is preserved.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Titulo == "" || req.Descripcion == "" || req.Prioridad == "" || req.Estado == "" {
		return errorutil.NewValidationError("titulo, descripcion, prioridad y estado son obligatorios", nil)
	}

	ticket, err := h.tickets.Update(c.UserContext(), id, service.TicketUpdateInput{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Prioridad:   req.Prioridad,
		Estado:      req.Estado,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Delete handles DELETE /api/tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	deleted, err := h.tickets.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return errorutil.NewNotFound("ticket", map[string]any{"id": id})
	}
	return c.SendStatus(http.StatusNoContent)
}

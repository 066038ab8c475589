package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/api/dto"
	"github.com/sistema-tickets/helpdesk-service/internal/service"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// ComentariosHandler exposes the comment thread of a ticket.
type ComentariosHandler struct {
	comentarios *service.ComentarioService
}

// NewComentariosHandler constructs handler.
func NewComentariosHandler(comentarios *service.ComentarioService) *ComentariosHandler {
	return &ComentariosHandler{comentarios: comentarios}
}

// List handles GET /api/tickets/:ticketId/comentarios. Comments come back
// ordered by ascending creation time.
func (h *ComentariosHandler) List(c *fiber.Ctx) error {
	ticketID, err := parseIDParam(c, "ticketId")
	if err != nil {
		return err
	}
	comentarios, err := h.comentarios.ListByTicket(c.UserContext(), ticketID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewComentarioListResponse(comentarios))
}

// Create handles POST /api/tickets/:ticketId/comentarios. An unresolved
// ticket or user reference is a validation error, not a 404.
func (h *ComentariosHandler) Create(c *fiber.Ctx) error {
	ticketID, err := parseIDParam(c, "ticketId")
	if err != nil {
		return err
	}

	var req dto.CreateComentarioRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	comentario, err := h.comentarios.Create(c.UserContext(), ticketID, req.UsuarioID, req.Texto)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewComentarioResponse(comentario))
}

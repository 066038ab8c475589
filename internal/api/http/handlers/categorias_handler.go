package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/api/dto"
	"github.com/sistema-tickets/helpdesk-service/internal/domain"
	"github.com/sistema-tickets/helpdesk-service/internal/service"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// CategoriasHandler exposes category listing and creation.
type CategoriasHandler struct {
	categorias *service.CategoriaService
}

// NewCategoriasHandler constructs handler.
func NewCategoriasHandler(categorias *service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{categorias: categorias}
}

// List handles GET /api/categorias.
func (h *CategoriasHandler) List(c *fiber.Ctx) error {
	categorias, err := h.categorias.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoriaListResponse(categorias))
}

// Get handles GET /api/categorias/:id.
func (h *CategoriasHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	categoria, err := h.categorias.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoriaResponse(categoria))
}

// Create handles POST /api/categorias.
func (h *CategoriasHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Nombre == "" {
		return errorutil.NewValidationError("nombre es obligatorio", nil)
	}

	categoria, err := h.categorias.Create(c.UserContext(), &domain.Categoria{Nombre: req.Nombre})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCategoriaResponse(categoria))
}

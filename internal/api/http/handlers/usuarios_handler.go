package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/internal/api/dto"
	"github.com/sistema-tickets/helpdesk-service/internal/service"
	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// UsuariosHandler exposes user CRUD and the login check.
type UsuariosHandler struct {
	usuarios *service.UsuarioService
}

// NewUsuariosHandler constructs handler.
func NewUsuariosHandler(usuarios *service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{usuarios: usuarios}
}

// List handles GET /api/usuarios.
func (h *UsuariosHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUsuarioListResponse(usuarios))
}

// Get handles GET /api/usuarios/:id.
func (h *UsuariosHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	usuario, err := h.usuarios.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUsuarioResponse(usuario))
}

// Create handles POST /api/usuarios.
func (h *UsuariosHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Nombre == "" || req.Email == "" || req.Password == "" || req.Rol == "" {
		return errorutil.NewValidationError("nombre, email, password y rol son obligatorios", nil)
	}

	usuario, err := h.usuarios.Create(c.UserContext(), service.UsuarioCreateInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUsuarioResponse(usuario))
}

// Login handles POST /api/usuarios/login. A credential mismatch is an
// unauthorized response, never a 404 or 500.
func (h *UsuariosHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return errorutil.NewValidationError("email y password son obligatorios", nil)
	}

	usuario, err := h.usuarios.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	if usuario == nil {
		return errorutil.NewUnauthorized("credenciales inválidas")
	}
	return c.JSON(dto.NewUsuarioResponse(usuario))
}

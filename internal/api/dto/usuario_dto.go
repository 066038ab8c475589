package dto

import "github.com/sistema-tickets/helpdesk-service/internal/domain"

// CreateUsuarioRequest payload for signup.
type CreateUsuarioRequest struct {
	Nombre   string     `json:"nombre"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Rol      domain.Rol `json:"rol"`
}

// LoginRequest payload for the login check.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse is the wire representation of a user. The password hash is
// never serialized.
type UsuarioResponse struct {
	ID     int64      `json:"id"`
	Nombre string     `json:"nombre"`
	Email  string     `json:"email"`
	Rol    domain.Rol `json:"rol"`
}

// NewUsuarioResponse maps a domain user to its wire form.
func NewUsuarioResponse(usuario *domain.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:     usuario.ID,
		Nombre: usuario.Nombre,
		Email:  usuario.Email,
		Rol:    usuario.Rol,
	}
}

// NewUsuarioListResponse maps a slice of domain users.
func NewUsuarioListResponse(usuarios []domain.Usuario) []UsuarioResponse {
	result := make([]UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		result = append(result, NewUsuarioResponse(&usuarios[i]))
	}
	return result
}

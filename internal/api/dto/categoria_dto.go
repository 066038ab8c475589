package dto

import "github.com/sistema-tickets/helpdesk-service/internal/domain"

// CreateCategoriaRequest payload.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// CategoriaResponse wire representation.
type CategoriaResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// NewCategoriaResponse maps a domain category to its wire form.
func NewCategoriaResponse(categoria *domain.Categoria) CategoriaResponse {
	return CategoriaResponse{ID: categoria.ID, Nombre: categoria.Nombre}
}

// NewCategoriaListResponse maps a slice of domain categories.
func NewCategoriaListResponse(categorias []domain.Categoria) []CategoriaResponse {
	result := make([]CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		result = append(result, NewCategoriaResponse(&categorias[i]))
	}
	return result
}

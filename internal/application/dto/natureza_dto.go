package dto

import "time"

// CreateNaturezaRequest entrada para criar uma natureza.
type CreateNaturezaRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// UpdateNaturezaRequest entrada para atualizar uma natureza.
type UpdateNaturezaRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// NaturezaResponse saída de uma natureza.
type NaturezaResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NaturezaListResponse lista paginada de naturezas.
type NaturezaListResponse struct {
	Items []NaturezaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

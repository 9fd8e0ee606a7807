package dto

import "time"

// CreateFornecedorRequest entrada para criar um fornecedor.
type CreateFornecedorRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// UpdateFornecedorRequest entrada para atualizar um fornecedor.
type UpdateFornecedorRequest struct {
	Nome string `json:"nome" validate:"required,min=1,max=200"`
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FornecedorListResponse lista paginada de fornecedores.
type FornecedorListResponse struct {
	Items []FornecedorResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

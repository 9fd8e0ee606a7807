package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto. FornecedorIDs e
// NaturezaIDs são opcionais; quando presentes, as associações nascem na mesma
// transação do produto.
type CreateProdutoRequest struct {
	Nome          string          `json:"nome" validate:"required,min=1,max=200"`
	Codigo        string          `json:"codigo" validate:"required,min=1,max=13"`
	Descricao     string          `json:"descricao"`
	Preco         decimal.Decimal `json:"preco"`
	CodigoB       string          `json:"codigo_b"`
	CodigoC       string          `json:"codigo_c"`
	FornecedorIDs []int64         `json:"fornecedor_ids"`
	NaturezaIDs   []int64         `json:"natureza_ids"`
}

// UpdateProdutoRequest entrada para atualizar um produto (campos opcionais).
// Listas de associação nil significam "não mexer"; lista vazia limpa o conjunto.
type UpdateProdutoRequest struct {
	Nome          *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Codigo        *string          `json:"codigo" validate:"omitempty,min=1,max=13"`
	Descricao     *string          `json:"descricao"`
	Preco         *decimal.Decimal `json:"preco"`
	CodigoB       *string          `json:"codigo_b"`
	CodigoC       *string          `json:"codigo_c"`
	FornecedorIDs []int64          `json:"fornecedor_ids"`
	NaturezaIDs   []int64          `json:"natureza_ids"`
}

// SetAssociacoesRequest entrada para substituir o conjunto de associações de
// um produto (fornecedores ou naturezas).
type SetAssociacoesRequest struct {
	IDs []int64 `json:"ids"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID            int64           `json:"id"`
	Nome          string          `json:"nome"`
	Codigo        string          `json:"codigo"`
	Descricao     string          `json:"descricao"`
	Preco         decimal.Decimal `json:"preco"`
	CodigoB       string          `json:"codigo_b"`
	CodigoC       string          `json:"codigo_c"`
	FornecedorIDs []int64         `json:"fornecedor_ids"`
	NaturezaIDs   []int64         `json:"natureza_ids"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

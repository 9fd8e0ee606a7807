package entity

import "time"

// Fornecedor representa um fornecedor do catálogo. Nome é único.
// Não depende de nenhum Produto para existir; a exclusão é rejeitada enquanto
// houver produto associado.
type Fornecedor struct {
	ID        int64
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo. Codigo é único em todo o catálogo e
// persiste com largura fixa (char) — o repositório remove o padding na leitura.
// As associações com Fornecedor e Natureza são muitos-para-muitos e não
// implicam posse das entidades relacionadas.
type Produto struct {
	ID        int64
	Nome      string
	Codigo    string
	Descricao string
	Preco     decimal.Decimal // não-negativo, 2 casas decimais
	CodigoB   string          // código secundário opcional
	CodigoC   string          // código secundário opcional
	CreatedAt time.Time
	UpdatedAt time.Time

	FornecedorIDs []int64
	NaturezaIDs   []int64
}

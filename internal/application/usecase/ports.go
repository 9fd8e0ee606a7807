package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CatalogTxRunner executa um callback com repositórios do catálogo atados a
// uma única transação: ou tudo é aplicado, ou tudo é revertido.
// Implementado por postgres.TxRunner.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		fornecedorRepo repository.FornecedorRepository,
		naturezaRepo repository.NaturezaRepository,
	) error) error
}

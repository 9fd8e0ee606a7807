package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CatalogTxRunner.
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
// É o mecanismo que garante que escrita do produto e substituição das
// associações sejam aplicadas por inteiro ou revertidas por inteiro.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Qualquer erro de fn desfaz tudo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	fornecedorRepo repository.FornecedorRepository,
	naturezaRepo repository.NaturezaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	produtoRepo := NewProdutoRepository(tx)
	fornecedorRepo := NewFornecedorRepository(tx)
	naturezaRepo := NewNaturezaRepository(tx)

	if err := fn(produtoRepo, fornecedorRepo, naturezaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto (DIP).
// Erros de integridade chegam mapeados para a taxonomia de domínio:
// código duplicado → domain.ErrDuplicateCode, id ausente → domain.ErrNotFound.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id int64) (*entity.Produto, error)
	// GetByIDForUpdate obtém o produto travando a linha até o fim da
	// transação corrente (SELECT ... FOR UPDATE). É a leitura que precede
	// toda mesclagem ler-modificar-gravar: serializa mutações concorrentes
	// sobre o mesmo produto. Só faz sentido dentro do TxRunner.
	GetByIDForUpdate(id int64) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	List(limit, offset int) ([]*entity.Produto, error)
	Delete(id int64) error
	// ReplaceFornecedores substitui o conjunto completo de associações
	// Produto↔Fornecedor em uma operação; id desconhecido → ErrNotFound.
	// Deve ser invocado dentro de uma transação (TxRunner).
	ReplaceFornecedores(produtoID int64, fornecedorIDs []int64) error
	ReplaceNaturezas(produtoID int64, naturezaIDs []int64) error
}

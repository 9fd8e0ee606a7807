package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// FornecedorRepository define o porto de persistência para Fornecedor (DIP).
// Delete falha com domain.ErrReferencedByProduct enquanto houver produto
// associado; a verificação e a exclusão são atômicas no armazenamento.
type FornecedorRepository interface {
	Create(fornecedor *entity.Fornecedor) error
	GetByID(id int64) (*entity.Fornecedor, error)
	GetByNome(nome string) (*entity.Fornecedor, error)
	Update(fornecedor *entity.Fornecedor) error
	List(limit, offset int) ([]*entity.Fornecedor, error)
	Delete(id int64) error
}

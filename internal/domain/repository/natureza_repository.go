package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// NaturezaRepository define o porto de persistência para Natureza (DIP).
// Mesmo contrato de exclusão do FornecedorRepository.
type NaturezaRepository interface {
	Create(natureza *entity.Natureza) error
	GetByID(id int64) (*entity.Natureza, error)
	GetByNome(nome string) (*entity.Natureza, error)
	Update(natureza *entity.Natureza) error
	List(limit, offset int) ([]*entity.Natureza, error)
	Delete(id int64) error
}

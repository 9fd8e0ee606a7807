package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// FornecedorUseCase aplica regras de negócio para fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso com o porto de persistência.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cria um fornecedor. Nome duplicado → ErrDuplicateName.
func (uc *FornecedorUseCase) Create(in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	fornecedor := &entity.Fornecedor{Nome: in.Nome, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// GetByID obtém um fornecedor por ID. (nil, nil) quando não existe.
func (uc *FornecedorUseCase) GetByID(id int64) (*dto.FornecedorResponse, error) {
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, nil
	}
	return toFornecedorResponse(fornecedor), nil
}

// GetByNome obtém um fornecedor pelo nome único. (nil, nil) quando não existe.
func (uc *FornecedorUseCase) GetByNome(nome string) (*dto.FornecedorResponse, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrValidation
	}
	fornecedor, err := uc.repo.GetByNome(nome)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, nil
	}
	return toFornecedorResponse(fornecedor), nil
}

// List lista fornecedores com paginação.
func (uc *FornecedorUseCase) List(page dto.PageRequest) (*dto.FornecedorListResponse, error) {
	page.DefaultPage()
	fornecedores, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		items = append(items, *toFornecedorResponse(f))
	}
	return &dto.FornecedorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update renomeia um fornecedor.
func (uc *FornecedorUseCase) Update(id int64, in dto.UpdateFornecedorRequest) (*dto.FornecedorResponse, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return nil, domain.ErrValidation
	}
	fornecedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrNotFound
	}
	fornecedor.Nome = in.Nome
	fornecedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(fornecedor); err != nil {
		return nil, err
	}
	return toFornecedorResponse(fornecedor), nil
}

// Delete remove um fornecedor. Fornecedor associado a algum produto →
// ErrReferencedByProduct; a exclusão é rejeitada, nunca cascateada.
func (uc *FornecedorUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	if f == nil {
		return nil
	}
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

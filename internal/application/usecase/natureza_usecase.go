package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// NaturezaUseCase aplica regras de negócio para naturezas.
type NaturezaUseCase struct {
	repo repository.NaturezaRepository
}

// NewNaturezaUseCase constrói o caso de uso com o porto de persistência.
func NewNaturezaUseCase(repo repository.NaturezaRepository) *NaturezaUseCase {
	return &NaturezaUseCase{repo: repo}
}

// Create cria uma natureza. Nome duplicado → ErrDuplicateName.
func (uc *NaturezaUseCase) Create(in dto.CreateNaturezaRequest) (*dto.NaturezaResponse, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	natureza := &entity.Natureza{Nome: in.Nome, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(natureza); err != nil {
		return nil, err
	}
	return toNaturezaResponse(natureza), nil
}

// GetByID obtém uma natureza por ID. (nil, nil) quando não existe.
func (uc *NaturezaUseCase) GetByID(id int64) (*dto.NaturezaResponse, error) {
	natureza, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if natureza == nil {
		return nil, nil
	}
	return toNaturezaResponse(natureza), nil
}

// GetByNome obtém uma natureza pelo nome único. (nil, nil) quando não existe.
func (uc *NaturezaUseCase) GetByNome(nome string) (*dto.NaturezaResponse, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrValidation
	}
	natureza, err := uc.repo.GetByNome(nome)
	if err != nil {
		return nil, err
	}
	if natureza == nil {
		return nil, nil
	}
	return toNaturezaResponse(natureza), nil
}

// List lista naturezas com paginação.
func (uc *NaturezaUseCase) List(page dto.PageRequest) (*dto.NaturezaListResponse, error) {
	page.DefaultPage()
	naturezas, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NaturezaResponse, 0, len(naturezas))
	for _, n := range naturezas {
		items = append(items, *toNaturezaResponse(n))
	}
	return &dto.NaturezaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update renomeia uma natureza.
func (uc *NaturezaUseCase) Update(id int64, in dto.UpdateNaturezaRequest) (*dto.NaturezaResponse, error) {
	in.Nome = strings.TrimSpace(in.Nome)
	if in.Nome == "" {
		return nil, domain.ErrValidation
	}
	natureza, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if natureza == nil {
		return nil, domain.ErrNotFound
	}
	natureza.Nome = in.Nome
	natureza.UpdatedAt = time.Now()
	if err := uc.repo.Update(natureza); err != nil {
		return nil, err
	}
	return toNaturezaResponse(natureza), nil
}

// Delete remove uma natureza. Natureza associada a algum produto →
// ErrReferencedByProduct.
func (uc *NaturezaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toNaturezaResponse(n *entity.Natureza) *dto.NaturezaResponse {
	if n == nil {
		return nil
	}
	return &dto.NaturezaResponse{
		ID:        n.ID,
		Nome:      n.Nome,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

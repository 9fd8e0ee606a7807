package usecase

import (
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// UsuarioUseCase aplica regras de negócio para usuários (leitura e revogação;
// a criação fica no AuthUseCase, que é quem hasheia a senha).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso com o porto de persistência.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// GetByID obtém um usuário por ID. (nil, nil) quando não existe.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUsuarioResponse(user), nil
}

// List lista usuários com paginação. A resposta nunca inclui o hash de senha.
func (uc *UsuarioUseCase) List(page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	usuarios, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		items = append(items, *entityToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SetAtivo liga/desliga o acesso de um usuário. Não existe exclusão de
// usuário na API; desativar é o mecanismo de revogação.
func (uc *UsuarioUseCase) SetAtivo(id int64, ativo bool) (*dto.UsuarioResponse, error) {
	if err := uc.repo.SetAtivo(id, ativo); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUsuarioResponse(user), nil
}

func entityToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Login:     u.Login,
		Perfil:    u.Perfil,
		Ativo:     u.Ativo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

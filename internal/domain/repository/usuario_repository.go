package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// Consultas que não encontram o registro retornam (nil, nil).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	// FindAtivoByLogin retorna apenas usuários com Ativo = true; usuário
	// inativo é indistinguível de login inexistente para o chamador.
	FindAtivoByLogin(login string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	SetAtivo(id int64, ativo bool) error
	List(limit, offset int) ([]*entity.Usuario, error)
}

package dto

import "time"

// CreateUsuarioRequest entrada para criar um usuário (senha em texto, o hash
// acontece no use case; só administradores chegam neste endpoint).
type CreateUsuarioRequest struct {
	Nome   string `json:"nome" validate:"required,min=1,max=200"`
	Login  string `json:"login" validate:"required,min=1,max=100"`
	Senha  string `json:"senha" validate:"required,min=4"`
	Perfil string `json:"perfil" validate:"required,oneof=administrador comum"`
}

// SetAtivoRequest entrada para ativar/desativar um usuário.
type SetAtivoRequest struct {
	Ativo bool `json:"ativo"`
}

// UsuarioResponse saída de um usuário. Não existe campo de senha nem de hash.
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Login     string    `json:"login"`
	Perfil    string    `json:"perfil"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuários.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída com token JWT e o usuário autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

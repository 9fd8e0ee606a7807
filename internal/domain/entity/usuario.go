package entity

import "time"

// Perfis válidos para Usuario.
const (
	PerfilAdministrador = "administrador"
	PerfilComum         = "comum"
)

// Usuario representa um usuário do sistema. SenhaHash guarda apenas o hash
// bcrypt — o texto plano nunca é persistido nem transmitido. A revogação de
// acesso se faz pelo flag Ativo, não por exclusão.
type Usuario struct {
	ID        int64
	Nome      string
	Login     string
	SenhaHash string
	Perfil    string // administrador, comum
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

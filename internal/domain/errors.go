package domain

import "errors"

// Erros de domínio (sem dependências externas). Cada um corresponde a um
// resultado estável visível ao cliente; os handlers HTTP mapeiam por errors.Is.
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrDuplicateCode       = errors.New("código de produto já cadastrado")
	ErrDuplicateName       = errors.New("nome já cadastrado")
	ErrDuplicateLogin      = errors.New("login já cadastrado")
	ErrReferencedByProduct = errors.New("registro referenciado por pelo menos um produto")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrForbidden           = errors.New("acesso negado")
	ErrValidation          = errors.New("entrada inválida")
)

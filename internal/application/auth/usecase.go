package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login e criação de usuários.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica login/senha contra um usuário ativo e gera o JWT.
// Login inexistente, usuário inativo e senha errada produzem o mesmo
// ErrInvalidCredentials: o chamador não consegue distinguir qual check falhou.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Senha == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.usuarioRepo.FindAtivoByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparação contra um hash fixo para o custo ser o mesmo do caminho
		// com usuário encontrado.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Senha))
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(in.Senha)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUsuarioResponse(user),
	}, nil
}

// dummyHash é um hash bcrypt válido de uma senha aleatória, usado só para
// igualar o custo do caminho "login inexistente".
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("catalogo-dummy"), bcrypt.DefaultCost)
	return h
}()

// CreateUser cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrDuplicateLogin se o login já existir. O gate de perfil
// administrador fica no RequireRole da rota, antes de chegar aqui.
func (uc *AuthUseCase) CreateUser(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	in.Login = strings.TrimSpace(in.Login)
	if in.Login == "" || in.Senha == "" || in.Nome == "" {
		return nil, domain.ErrValidation
	}
	if in.Perfil != entity.PerfilAdministrador && in.Perfil != entity.PerfilComum {
		return nil, domain.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.Usuario{
		Nome:      in.Nome,
		Login:     in.Login,
		SenhaHash: string(hash),
		Perfil:    in.Perfil,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(user); err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
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

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Catalogo-api/pkg/jwt"
)

// fakeUsuarioRepo implementação em memória do porto UsuarioRepository.
type fakeUsuarioRepo struct {
	seq      int64
	usuarios map[int64]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[int64]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, existing := range r.usuarios {
		if existing.Login == u.Login {
			return domain.ErrDuplicateLogin
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindAtivoByLogin(login string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Login == login && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) SetAtivo(id int64, ativo bool) error {
	u, ok := r.usuarios[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Ativo = ativo
	return nil
}

func (r *fakeUsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.usuarios {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

const testSecret = "auth-usecase-test-secret"

func newTestUseCase(repo *fakeUsuarioRepo) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-test"})
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, login, senha, perfil string, ativo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Nome:      login,
		Login:     login,
		SenhaHash: string(hash),
		Perfil:    perfil,
		Ativo:     ativo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(u))
	if !ativo {
		require.NoError(t, repo.SetAtivo(u.ID, false))
	}
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Sucesso_TokenCarregaPerfil(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "admin", "admin", entity.PerfilAdministrador, true)
	uc := newTestUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Login: "admin", Senha: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, perfil, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.PerfilAdministrador, perfil,
		"o claim de perfil decodificado deve ser administrador")
}

// Login inexistente, senha errada e usuário inativo devem ser indistinguíveis:
// todos retornam ErrInvalidCredentials, sem vazar qual verificação falhou.
func TestLogin_FalhasIndistinguiveis(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "maria", "segredo", entity.PerfilComum, true)
	seedUsuario(t, repo, "inativo", "segredo", entity.PerfilComum, false)
	uc := newTestUseCase(repo)

	casos := map[string]dto.LoginRequest{
		"login inexistente": {Login: "ninguem", Senha: "segredo"},
		"senha errada":      {Login: "maria", Senha: "errada"},
		"usuario inativo":   {Login: "inativo", Senha: "segredo"},
	}
	for nome, in := range casos {
		t.Run(nome, func(t *testing.T) {
			out, err := uc.Login(in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin_CamposVazios_CredenciaisInvalidas(t *testing.T) {
	uc := newTestUseCase(newFakeUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Login: "", Senha: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_HasheiaSenha(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestUseCase(repo)

	out, err := uc.CreateUser(dto.CreateUsuarioRequest{
		Nome:   "João",
		Login:  "joao",
		Senha:  "senha-forte",
		Perfil: entity.PerfilComum,
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.SenhaHash,
		"a senha nunca pode ser persistida em texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("senha-forte")),
		"o hash armazenado deve verificar contra a senha original")
}

func TestCreateUser_LoginDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestUseCase(repo)

	_, err := uc.CreateUser(dto.CreateUsuarioRequest{Nome: "a", Login: "dup", Senha: "x1234", Perfil: entity.PerfilComum})
	require.NoError(t, err)

	_, err = uc.CreateUser(dto.CreateUsuarioRequest{Nome: "b", Login: "dup", Senha: "y1234", Perfil: entity.PerfilComum})
	assert.ErrorIs(t, err, domain.ErrDuplicateLogin)
}

func TestCreateUser_PerfilInvalido(t *testing.T) {
	uc := newTestUseCase(newFakeUsuarioRepo())

	_, err := uc.CreateUser(dto.CreateUsuarioRequest{Nome: "a", Login: "a", Senha: "x1234", Perfil: "superuser"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste um novo usuário. Login duplicado → domain.ErrDuplicateLogin.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuario (nome, login, senha_hash, perfil, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		usuario.Nome, usuario.Login, usuario.SenhaHash, usuario.Perfil, usuario.Ativo,
		usuario.CreatedAt, usuario.UpdatedAt,
	).Scan(&usuario.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLogin
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.scanOne(r.pool.QueryRow(context.Background(), `
		SELECT id, nome, login, senha_hash, perfil, ativo, created_at, updated_at
		FROM usuario WHERE id = $1`, id))
}

// FindAtivoByLogin obtém um usuário ativo pelo login. Usuário inativo retorna
// (nil, nil), indistinguível de login inexistente.
func (r *UsuarioRepo) FindAtivoByLogin(login string) (*entity.Usuario, error) {
	return r.scanOne(r.pool.QueryRow(context.Background(), `
		SELECT id, nome, login, senha_hash, perfil, ativo, created_at, updated_at
		FROM usuario WHERE login = $1 AND ativo = true`, login))
}

// Update atualiza um usuário. Login duplicado → ErrDuplicateLogin; id ausente → ErrNotFound.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	cmd, err := r.pool.Exec(context.Background(), `
		UPDATE usuario SET nome = $2, login = $3, senha_hash = $4, perfil = $5, ativo = $6, updated_at = $7
		WHERE id = $1`,
		usuario.ID, usuario.Nome, usuario.Login, usuario.SenhaHash, usuario.Perfil,
		usuario.Ativo, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateLogin
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetAtivo liga/desliga o acesso do usuário. É o mecanismo de revogação;
// tokens já emitidos continuam válidos até expirar.
func (r *UsuarioRepo) SetAtivo(id int64, ativo bool) error {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE usuario SET ativo = $2, updated_at = now() WHERE id = $1`, id, ativo)
	if err != nil {
		return fmt.Errorf("set ativo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista usuários com paginação. O hash de senha sai do banco mas nunca
// chega à resposta HTTP (o DTO não tem o campo).
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, nome, login, senha_hash, perfil, ativo, created_at, updated_at
		FROM usuario ORDER BY login LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Login, &u.SenhaHash, &u.Perfil, &u.Ativo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UsuarioRepo) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Login, &u.SenhaHash, &u.Perfil, &u.Ativo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência para fornecedores. Passar pool ou tx (Querier).
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor. Nome duplicado → domain.ErrDuplicateName.
func (r *FornecedorRepo) Create(fornecedor *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedor (nome, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		fornecedor.Nome, fornecedor.CreatedAt, fornecedor.UpdatedAt,
	).Scan(&fornecedor.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *FornecedorRepo) GetByID(id int64) (*entity.Fornecedor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM fornecedor WHERE id = $1`, id))
}

// GetByNome obtém um fornecedor pelo nome único.
func (r *FornecedorRepo) GetByNome(nome string) (*entity.Fornecedor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM fornecedor WHERE nome = $1`, nome))
}

// Update atualiza um fornecedor. Nome duplicado → ErrDuplicateName; id ausente → ErrNotFound.
func (r *FornecedorRepo) Update(fornecedor *entity.Fornecedor) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE fornecedor SET nome = $2, updated_at = $3 WHERE id = $1`,
		fornecedor.ID, fornecedor.Nome, fornecedor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista fornecedores com paginação.
func (r *FornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM fornecedor ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete remove um fornecedor. A FK RESTRICT do join produto_fornecedor faz a
// verificação "referenciado por produto" e a exclusão serem um passo só: não
// existe janela para uma associação concorrente passar entre o check e o delete.
func (r *FornecedorRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM fornecedor WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err, "produto_fornecedor_fornecedor_id_fkey") {
			return domain.ErrReferencedByProduct
		}
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FornecedorRepo) scanOne(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(&f.ID, &f.Nome, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

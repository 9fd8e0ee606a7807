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

var _ repository.NaturezaRepository = (*NaturezaRepo)(nil)

// NaturezaRepo implementação do porto NaturezaRepository sobre PostgreSQL (usável com pool ou tx).
type NaturezaRepo struct {
	q Querier
}

// NewNaturezaRepository constrói o adaptador de persistência para naturezas. Passar pool ou tx (Querier).
func NewNaturezaRepository(q Querier) *NaturezaRepo {
	return &NaturezaRepo{q: q}
}

// Create persiste uma nova natureza. Nome duplicado → domain.ErrDuplicateName.
func (r *NaturezaRepo) Create(natureza *entity.Natureza) error {
	query := `
		INSERT INTO natureza (nome, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		natureza.Nome, natureza.CreatedAt, natureza.UpdatedAt,
	).Scan(&natureza.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert natureza: %w", err)
	}
	return nil
}

// GetByID obtém uma natureza por ID.
func (r *NaturezaRepo) GetByID(id int64) (*entity.Natureza, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM natureza WHERE id = $1`, id))
}

// GetByNome obtém uma natureza pelo nome único.
func (r *NaturezaRepo) GetByNome(nome string) (*entity.Natureza, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM natureza WHERE nome = $1`, nome))
}

// Update atualiza uma natureza. Nome duplicado → ErrDuplicateName; id ausente → ErrNotFound.
func (r *NaturezaRepo) Update(natureza *entity.Natureza) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE natureza SET nome = $2, updated_at = $3 WHERE id = $1`,
		natureza.ID, natureza.Nome, natureza.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update natureza: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista naturezas com paginação.
func (r *NaturezaRepo) List(limit, offset int) ([]*entity.Natureza, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nome, created_at, updated_at FROM natureza ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list naturezas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Natureza
	for rows.Next() {
		var n entity.Natureza
		if err := rows.Scan(&n.ID, &n.Nome, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan natureza: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// Delete remove uma natureza. Mesmo contrato atômico do FornecedorRepo.Delete:
// a FK RESTRICT do join decide "referenciado" e exclui no mesmo comando.
func (r *NaturezaRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM natureza WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err, "produto_natureza_natureza_id_fkey") {
			return domain.ErrReferencedByProduct
		}
		return fmt.Errorf("delete natureza: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NaturezaRepo) scanOne(row pgx.Row) (*entity.Natureza, error) {
	var n entity.Natureza
	err := row.Scan(&n.ID, &n.Nome, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get natureza: %w", err)
	}
	return &n, nil
}

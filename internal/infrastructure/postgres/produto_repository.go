package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. Codigo duplicado → domain.ErrDuplicateCode.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produto (nome, codigo, descricao, preco, codigo_b, codigo_c, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		produto.Nome, produto.Codigo, produto.Descricao, produto.Preco,
		produto.CodigoB, produto.CodigoC, produto.CreatedAt, produto.UpdatedAt,
	).Scan(&produto.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID, com os ids das associações carregados.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	query := `
		SELECT id, nome, codigo, descricao, preco, codigo_b, codigo_c, created_at, updated_at
		FROM produto WHERE id = $1`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadAssociations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByIDForUpdate obtém um produto por ID travando a linha (FOR UPDATE).
// A trava vale até o fim da transação corrente, então mutações concorrentes
// sobre o mesmo produto ficam serializadas — deve rodar dentro do TxRunner.
func (r *ProdutoRepo) GetByIDForUpdate(id int64) (*entity.Produto, error) {
	query := `
		SELECT id, nome, codigo, descricao, preco, codigo_b, codigo_c, created_at, updated_at
		FROM produto WHERE id = $1 FOR UPDATE`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadAssociations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByCodigo obtém um produto pelo código único (sem padding).
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	query := `
		SELECT id, nome, codigo, descricao, preco, codigo_b, codigo_c, created_at, updated_at
		FROM produto WHERE codigo = $1`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, codigo))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadAssociations(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update atualiza um produto existente. Codigo duplicado → ErrDuplicateCode;
// id ausente → ErrNotFound.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produto SET nome = $2, codigo = $3, descricao = $4, preco = $5, codigo_b = $6, codigo_c = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Codigo, produto.Descricao, produto.Preco,
		produto.CodigoB, produto.CodigoC, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("update produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista produtos com paginação (ordem não garantida pelo contrato).
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `
		SELECT id, nome, codigo, descricao, preco, codigo_b, codigo_c, created_at, updated_at
		FROM produto ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	byID := map[int64]*entity.Produto{}
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	ids := make([]int64, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	if err := r.loadAssociationsBatch(byID, ids); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete remove um produto. As linhas de associação caem junto (FK ON DELETE CASCADE);
// é a única cascata sancionada do modelo.
func (r *ProdutoRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceFornecedores substitui o conjunto de associações Produto↔Fornecedor.
// Fornecedor inexistente dispara a FK do join e vira ErrNotFound. Deve rodar
// dentro de uma transação para a troca ser atômica.
func (r *ProdutoRepo) ReplaceFornecedores(produtoID int64, fornecedorIDs []int64) error {
	return r.replaceAssociations(produtoID, fornecedorIDs,
		`DELETE FROM produto_fornecedor WHERE produto_id = $1`,
		`INSERT INTO produto_fornecedor (produto_id, fornecedor_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
	)
}

// ReplaceNaturezas substitui o conjunto de associações Produto↔Natureza.
func (r *ProdutoRepo) ReplaceNaturezas(produtoID int64, naturezaIDs []int64) error {
	return r.replaceAssociations(produtoID, naturezaIDs,
		`DELETE FROM produto_natureza WHERE produto_id = $1`,
		`INSERT INTO produto_natureza (produto_id, natureza_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
	)
}

func (r *ProdutoRepo) replaceAssociations(produtoID int64, ids []int64, deleteSQL, insertSQL string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, deleteSQL, produtoID); err != nil {
		return fmt.Errorf("limpar associações: %w", err)
	}
	for _, id := range ids {
		if _, err := r.q.Exec(ctx, insertSQL, produtoID, id); err != nil {
			if isForeignKeyViolation(err, "") {
				return domain.ErrNotFound
			}
			return fmt.Errorf("inserir associação: %w", err)
		}
	}
	return nil
}

func (r *ProdutoRepo) scanOne(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(&p.ID, &p.Nome, &p.Codigo, &p.Descricao, &p.Preco,
		&p.CodigoB, &p.CodigoC, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	// codigo é char(13): o banco devolve com padding à direita.
	p.Codigo = strings.TrimRight(p.Codigo, " ")
	return &p, nil
}

func (r *ProdutoRepo) scanRow(rows pgx.Rows) (*entity.Produto, error) {
	var p entity.Produto
	if err := rows.Scan(&p.ID, &p.Nome, &p.Codigo, &p.Descricao, &p.Preco,
		&p.CodigoB, &p.CodigoC, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan produto: %w", err)
	}
	p.Codigo = strings.TrimRight(p.Codigo, " ")
	return &p, nil
}

func (r *ProdutoRepo) loadAssociations(p *entity.Produto) error {
	return r.loadAssociationsBatch(map[int64]*entity.Produto{p.ID: p}, []int64{p.ID})
}

func (r *ProdutoRepo) loadAssociationsBatch(byID map[int64]*entity.Produto, ids []int64) error {
	ctx := context.Background()
	if err := r.loadJoin(ctx, byID, ids,
		`SELECT produto_id, fornecedor_id FROM produto_fornecedor WHERE produto_id = ANY($1) ORDER BY fornecedor_id`,
		func(p *entity.Produto, id int64) { p.FornecedorIDs = append(p.FornecedorIDs, id) },
	); err != nil {
		return err
	}
	return r.loadJoin(ctx, byID, ids,
		`SELECT produto_id, natureza_id FROM produto_natureza WHERE produto_id = ANY($1) ORDER BY natureza_id`,
		func(p *entity.Produto, id int64) { p.NaturezaIDs = append(p.NaturezaIDs, id) },
	)
}

func (r *ProdutoRepo) loadJoin(ctx context.Context, byID map[int64]*entity.Produto, ids []int64, query string, add func(*entity.Produto, int64)) error {
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load associações: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var produtoID, relID int64
		if err := rows.Scan(&produtoID, &relID); err != nil {
			return fmt.Errorf("scan associação: %w", err)
		}
		if p, ok := byID[produtoID]; ok {
			add(p, relID)
		}
	}
	return rows.Err()
}

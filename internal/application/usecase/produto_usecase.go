package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// codigoMaxLen é a largura da coluna char do código de produto.
const codigoMaxLen = 13

// ProdutoUseCase aplica regras de negócio para produtos. Mutações que tocam
// produto e associações passam pelo TxRunner para serem atômicas.
type ProdutoUseCase struct {
	tx   CatalogTxRunner
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso com o runner transacional e o
// porto de leitura.
func NewProdutoUseCase(tx CatalogTxRunner, repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{tx: tx, repo: repo}
}

// Create cria um produto e, na mesma transação, as associações informadas.
// Código duplicado → ErrDuplicateCode e nada é gravado.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	in.Codigo = strings.TrimSpace(in.Codigo)
	if in.Nome == "" || in.Codigo == "" || len(in.Codigo) > codigoMaxLen {
		return nil, domain.ErrValidation
	}
	if in.Preco.IsNegative() {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	produto := &entity.Produto{
		Nome:      in.Nome,
		Codigo:    in.Codigo,
		Descricao: in.Descricao,
		Preco:     in.Preco.Round(2),
		CodigoB:   in.CodigoB,
		CodigoC:   in.CodigoC,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fornecedorIDs := dedupeIDs(in.FornecedorIDs)
	naturezaIDs := dedupeIDs(in.NaturezaIDs)

	err := uc.tx.Run(ctx, func(produtos repository.ProdutoRepository, _ repository.FornecedorRepository, _ repository.NaturezaRepository) error {
		if err := produtos.Create(produto); err != nil {
			return err
		}
		if len(fornecedorIDs) > 0 {
			if err := produtos.ReplaceFornecedores(produto.ID, fornecedorIDs); err != nil {
				return err
			}
		}
		if len(naturezaIDs) > 0 {
			if err := produtos.ReplaceNaturezas(produto.ID, naturezaIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	produto.FornecedorIDs = fornecedorIDs
	produto.NaturezaIDs = naturezaIDs
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto por ID. (nil, nil) quando não existe.
func (uc *ProdutoUseCase) GetByID(id int64) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// GetByCodigo obtém um produto pelo código único. (nil, nil) quando não
// existe; o código é comparado sem espaços nas pontas.
func (uc *ProdutoUseCase) GetByCodigo(codigo string) (*dto.ProdutoResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, domain.ErrValidation
	}
	produto, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// List lista produtos com paginação.
func (uc *ProdutoUseCase) List(page dto.PageRequest) (*dto.ProdutoListResponse, error) {
	page.DefaultPage()
	produtos, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, *toProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update atualiza os campos informados e, se listas de associação vierem no
// corpo, substitui os conjuntos na mesma transação.
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome != nil && *in.Nome == "" {
		return nil, domain.ErrValidation
	}
	if in.Codigo != nil {
		*in.Codigo = strings.TrimSpace(*in.Codigo)
		if *in.Codigo == "" || len(*in.Codigo) > codigoMaxLen {
			return nil, domain.ErrValidation
		}
	}
	if in.Preco != nil && in.Preco.IsNegative() {
		return nil, domain.ErrValidation
	}

	var updated *entity.Produto
	err := uc.tx.Run(ctx, func(produtos repository.ProdutoRepository, _ repository.FornecedorRepository, _ repository.NaturezaRepository) error {
		// Leitura com trava de linha: a mesclagem abaixo é ler-modificar-
		// gravar, e sem a trava duas atualizações concorrentes do mesmo
		// produto se sobrescreveriam em silêncio.
		produto, err := produtos.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		if in.Nome != nil {
			produto.Nome = *in.Nome
		}
		if in.Codigo != nil {
			produto.Codigo = *in.Codigo
		}
		if in.Descricao != nil {
			produto.Descricao = *in.Descricao
		}
		if in.Preco != nil {
			produto.Preco = in.Preco.Round(2)
		}
		if in.CodigoB != nil {
			produto.CodigoB = *in.CodigoB
		}
		if in.CodigoC != nil {
			produto.CodigoC = *in.CodigoC
		}
		produto.UpdatedAt = time.Now()
		if err := produtos.Update(produto); err != nil {
			return err
		}
		if in.FornecedorIDs != nil {
			produto.FornecedorIDs = dedupeIDs(in.FornecedorIDs)
			if err := produtos.ReplaceFornecedores(id, produto.FornecedorIDs); err != nil {
				return err
			}
		}
		if in.NaturezaIDs != nil {
			produto.NaturezaIDs = dedupeIDs(in.NaturezaIDs)
			if err := produtos.ReplaceNaturezas(id, produto.NaturezaIDs); err != nil {
				return err
			}
		}
		updated = produto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(updated), nil
}

// Delete remove um produto; as associações caem junto no armazenamento.
func (uc *ProdutoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// SetFornecedores substitui o conjunto de fornecedores do produto em uma
// transação. Ids duplicados colapsam; id desconhecido → ErrNotFound.
func (uc *ProdutoUseCase) SetFornecedores(ctx context.Context, produtoID int64, ids []int64) (*dto.ProdutoResponse, error) {
	return uc.setAssociacoes(ctx, produtoID, ids, repository.ProdutoRepository.ReplaceFornecedores)
}

// SetNaturezas substitui o conjunto de naturezas do produto em uma transação.
func (uc *ProdutoUseCase) SetNaturezas(ctx context.Context, produtoID int64, ids []int64) (*dto.ProdutoResponse, error) {
	return uc.setAssociacoes(ctx, produtoID, ids, repository.ProdutoRepository.ReplaceNaturezas)
}

func (uc *ProdutoUseCase) setAssociacoes(ctx context.Context, produtoID int64, ids []int64,
	replace func(repository.ProdutoRepository, int64, []int64) error) (*dto.ProdutoResponse, error) {
	ids = dedupeIDs(ids)
	var updated *entity.Produto
	err := uc.tx.Run(ctx, func(produtos repository.ProdutoRepository, _ repository.FornecedorRepository, _ repository.NaturezaRepository) error {
		// Trava a linha do produto para a troca de associações não
		// intercalar com um Update concorrente do mesmo registro.
		produto, err := produtos.GetByIDForUpdate(produtoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		if err := replace(produtos, produtoID, ids); err != nil {
			return err
		}
		produto, err = produtos.GetByID(produtoID)
		if err != nil {
			return err
		}
		updated = produto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(updated), nil
}

// dedupeIDs remove duplicados preservando a ordem da primeira ocorrência.
func dedupeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Codigo:        p.Codigo,
		Descricao:     p.Descricao,
		Preco:         p.Preco,
		CodigoB:       p.CodigoB,
		CodigoC:       p.CodigoC,
		FornecedorIDs: p.FornecedorIDs,
		NaturezaIDs:   p.NaturezaIDs,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

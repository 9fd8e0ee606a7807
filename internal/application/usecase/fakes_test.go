package usecase

import (
	"context"
	"slices"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// memStore estado compartilhado dos fakes em memória. Reproduz os contratos
// dos repositórios Postgres: unicidade, (nil, nil) para ausente, RESTRICT na
// exclusão de fornecedor/natureza referenciado e CASCADE na exclusão de produto.
type memStore struct {
	produtoSeq    int64
	fornecedorSeq int64
	naturezaSeq   int64
	produtos      map[int64]*entity.Produto
	fornecedores  map[int64]*entity.Fornecedor
	naturezas     map[int64]*entity.Natureza
	prodForn      map[int64][]int64
	prodNat       map[int64][]int64
	// leiturasComTrava conta as leituras feitas via GetByIDForUpdate, para os
	// testes verificarem que mesclagens ler-modificar-gravar travam a linha.
	leiturasComTrava int
}

func newMemStore() *memStore {
	return &memStore{
		produtos:     map[int64]*entity.Produto{},
		fornecedores: map[int64]*entity.Fornecedor{},
		naturezas:    map[int64]*entity.Natureza{},
		prodForn:     map[int64][]int64{},
		prodNat:      map[int64][]int64{},
	}
}

// fakeTxRunner entrega os fakes atados ao mesmo memStore. Os casos de erro
// dos testes falham antes de qualquer escrita, então o "rollback" é vazio.
type fakeTxRunner struct{ s *memStore }

func (t fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProdutoRepository,
	repository.FornecedorRepository,
	repository.NaturezaRepository,
) error) error {
	return fn(&fakeProdutoRepo{t.s}, &fakeFornecedorRepo{t.s}, &fakeNaturezaRepo{t.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeProdutoRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct{ s *memStore }

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	for _, existing := range r.s.produtos {
		if existing.Codigo == p.Codigo {
			return domain.ErrDuplicateCode
		}
	}
	r.s.produtoSeq++
	p.ID = r.s.produtoSeq
	cp := *p
	r.s.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	p, ok := r.s.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.FornecedorIDs = slices.Clone(r.s.prodForn[id])
	cp.NaturezaIDs = slices.Clone(r.s.prodNat[id])
	return &cp, nil
}

func (r *fakeProdutoRepo) GetByIDForUpdate(id int64) (*entity.Produto, error) {
	r.s.leiturasComTrava++
	return r.GetByID(id)
}

func (r *fakeProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	for id, p := range r.s.produtos {
		if p.Codigo == codigo {
			return r.GetByID(id)
		}
	}
	return nil, nil
}

func (r *fakeProdutoRepo) Update(p *entity.Produto) error {
	if _, ok := r.s.produtos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.s.produtos {
		if existing.ID != p.ID && existing.Codigo == p.Codigo {
			return domain.ErrDuplicateCode
		}
	}
	cp := *p
	r.s.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for id := range r.s.produtos {
		p, _ := r.GetByID(id)
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProdutoRepo) Delete(id int64) error {
	if _, ok := r.s.produtos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.produtos, id)
	delete(r.s.prodForn, id)
	delete(r.s.prodNat, id)
	return nil
}

func (r *fakeProdutoRepo) ReplaceFornecedores(produtoID int64, ids []int64) error {
	for _, id := range ids {
		if _, ok := r.s.fornecedores[id]; !ok {
			return domain.ErrNotFound
		}
	}
	r.s.prodForn[produtoID] = slices.Clone(ids)
	return nil
}

func (r *fakeProdutoRepo) ReplaceNaturezas(produtoID int64, ids []int64) error {
	for _, id := range ids {
		if _, ok := r.s.naturezas[id]; !ok {
			return domain.ErrNotFound
		}
	}
	r.s.prodNat[produtoID] = slices.Clone(ids)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeFornecedorRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeFornecedorRepo struct{ s *memStore }

func (r *fakeFornecedorRepo) Create(f *entity.Fornecedor) error {
	for _, existing := range r.s.fornecedores {
		if existing.Nome == f.Nome {
			return domain.ErrDuplicateName
		}
	}
	r.s.fornecedorSeq++
	f.ID = r.s.fornecedorSeq
	cp := *f
	r.s.fornecedores[f.ID] = &cp
	return nil
}

func (r *fakeFornecedorRepo) GetByID(id int64) (*entity.Fornecedor, error) {
	f, ok := r.s.fornecedores[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFornecedorRepo) GetByNome(nome string) (*entity.Fornecedor, error) {
	for _, f := range r.s.fornecedores {
		if f.Nome == nome {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFornecedorRepo) Update(f *entity.Fornecedor) error {
	if _, ok := r.s.fornecedores[f.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.s.fornecedores {
		if existing.ID != f.ID && existing.Nome == f.Nome {
			return domain.ErrDuplicateName
		}
	}
	cp := *f
	r.s.fornecedores[f.ID] = &cp
	return nil
}

func (r *fakeFornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	var out []*entity.Fornecedor
	for _, f := range r.s.fornecedores {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeFornecedorRepo) Delete(id int64) error {
	if _, ok := r.s.fornecedores[id]; !ok {
		return domain.ErrNotFound
	}
	for _, ids := range r.s.prodForn {
		if slices.Contains(ids, id) {
			return domain.ErrReferencedByProduct
		}
	}
	delete(r.s.fornecedores, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// fakeNaturezaRepo
// ──────────────────────────────────────────────────────────────────────────────

type fakeNaturezaRepo struct{ s *memStore }

func (r *fakeNaturezaRepo) Create(n *entity.Natureza) error {
	for _, existing := range r.s.naturezas {
		if existing.Nome == n.Nome {
			return domain.ErrDuplicateName
		}
	}
	r.s.naturezaSeq++
	n.ID = r.s.naturezaSeq
	cp := *n
	r.s.naturezas[n.ID] = &cp
	return nil
}

func (r *fakeNaturezaRepo) GetByID(id int64) (*entity.Natureza, error) {
	n, ok := r.s.naturezas[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNaturezaRepo) GetByNome(nome string) (*entity.Natureza, error) {
	for _, n := range r.s.naturezas {
		if n.Nome == nome {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNaturezaRepo) Update(n *entity.Natureza) error {
	if _, ok := r.s.naturezas[n.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.s.naturezas {
		if existing.ID != n.ID && existing.Nome == n.Nome {
			return domain.ErrDuplicateName
		}
	}
	cp := *n
	r.s.naturezas[n.ID] = &cp
	return nil
}

func (r *fakeNaturezaRepo) List(limit, offset int) ([]*entity.Natureza, error) {
	var out []*entity.Natureza
	for _, n := range r.s.naturezas {
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeNaturezaRepo) Delete(id int64) error {
	if _, ok := r.s.naturezas[id]; !ok {
		return domain.ErrNotFound
	}
	for _, ids := range r.s.prodNat {
		if slices.Contains(ids, id) {
			return domain.ErrReferencedByProduct
		}
	}
	delete(r.s.naturezas, id)
	return nil
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC    *usecase.ProdutoUseCase
	FornecedorUC *usecase.FornecedorUseCase
	NaturezaUC   *usecase.NaturezaUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra as rotas da API. Leituras do catálogo são públicas; toda
// mutação exige Bearer token de administrador — a cadeia
// AuthMiddleware → RequireRole roda inteira antes de qualquer acesso ao banco.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	admin := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(entity.PerfilAdministrador)}

	// Produtos
	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Post("/", append(admin, produtoHandler.Create)...)
	produtos.Put("/:id", append(admin, produtoHandler.Update)...)
	produtos.Delete("/:id", append(admin, produtoHandler.Delete)...)
	produtos.Put("/:id/fornecedores", append(admin, produtoHandler.SetFornecedores)...)
	produtos.Put("/:id/naturezas", append(admin, produtoHandler.SetNaturezas)...)

	// Fornecedores
	fornecedores := api.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Post("/", append(admin, fornecedorHandler.Create)...)
	fornecedores.Put("/:id", append(admin, fornecedorHandler.Update)...)
	fornecedores.Delete("/:id", append(admin, fornecedorHandler.Delete)...)

	// Naturezas
	naturezas := api.Group("/naturezas")
	naturezaHandler := NewNaturezaHandler(deps.NaturezaUC)
	naturezas.Get("/", naturezaHandler.List)
	naturezas.Get("/:id", naturezaHandler.GetByID)
	naturezas.Post("/", append(admin, naturezaHandler.Create)...)
	naturezas.Put("/:id", append(admin, naturezaHandler.Update)...)
	naturezas.Delete("/:id", append(admin, naturezaHandler.Delete)...)

	// Usuários (tudo restrito a administrador)
	usuarios := api.Group("/usuarios", admin...)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.AuthUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Put("/:id/ativo", usuarioHandler.SetAtivo)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// NaturezaHandler trata as requisições HTTP para Natureza. Mesma forma do
// FornecedorHandler, inclusive no mapeamento de erros.
type NaturezaHandler struct {
	uc *usecase.NaturezaUseCase
}

// NewNaturezaHandler constrói o handler.
func NewNaturezaHandler(uc *usecase.NaturezaUseCase) *NaturezaHandler {
	return &NaturezaHandler{uc: uc}
}

// Create godoc
// @Summary      Criar natureza
// @Tags         naturezas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNaturezaRequest  true  "Dados da natureza"
// @Success      201   {object}  dto.NaturezaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/naturezas [post]
func (h *NaturezaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNaturezaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return referenciadoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter natureza por ID
// @Tags         naturezas
// @Produce      json
// @Param        id   path  int  true  "ID da natureza"
// @Success      200  {object}  dto.NaturezaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/naturezas/{id} [get]
func (h *NaturezaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "natureza não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar naturezas
// @Tags         naturezas
// @Produce      json
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        nome    query  string  false  "Filtro por nome exato"
// @Success      200     {object}  dto.NaturezaListResponse
// @Router       /api/naturezas [get]
func (h *NaturezaHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	if nome := c.Query("nome"); nome != "" {
		out, err := h.uc.GetByNome(nome)
		if err != nil {
			return referenciadoError(c, err)
		}
		items := []dto.NaturezaResponse{}
		if out != nil {
			items = append(items, *out)
		}
		return c.JSON(dto.NaturezaListResponse{
			Items: items,
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		})
	}
	out, err := h.uc.List(dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar natureza
// @Tags         naturezas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da natureza"
// @Param        body  body  dto.UpdateNaturezaRequest  true  "Novo nome"
// @Success      200   {object}  dto.NaturezaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/naturezas/{id} [put]
func (h *NaturezaHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateNaturezaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return referenciadoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir natureza
// @Tags         naturezas
// @Security     Bearer
// @Param        id  path  int  true  "ID da natureza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "natureza ainda associada a produto"
// @Router       /api/naturezas/{id} [delete]
func (h *NaturezaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return referenciadoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

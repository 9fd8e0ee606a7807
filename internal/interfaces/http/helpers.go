package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam lê o parâmetro de rota :id como int64. 0 e negativos são
// inválidos.
func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePage lê limit/offset da query string.
func parsePage(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	return limit, offset
}

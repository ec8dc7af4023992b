package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "chatorder/internal/log"
	"chatorder/internal/services"
)

type ProductHandler struct {
	Stock *services.StockService
}

// GET /products — the page linked from the announcement post. Active
// products only, with base stock, ordered and remaining counts.
func (h *ProductHandler) Page(c *fiber.Ctx) error {
	rows, err := h.Stock.Summarize(false)
	if err != nil {
		applog.Error(c, "products.page.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not load products")
	}
	return c.Render("products", fiber.Map{"Rows": rows})
}

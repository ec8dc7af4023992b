package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chatorder/internal/domain"
	applog "chatorder/internal/log"
	"chatorder/internal/services"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Ledger  *services.LedgerService
	Stock   *services.StockService
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in domain.ProductCreate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid JSON"})
	}
	id, err := h.Catalog.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(fiber.Map{"success": false, "message": "a product with this name already exists"})
		}
		applog.Error(c, "admin.products.create.fail", err, map[string]any{"name": in.Name})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	applog.Audit(c, "admin.products.create", map[string]any{"id": id, "name": in.Name})
	return c.JSON(fiber.Map{"success": true, "id": id})
}

// GET /admin/products
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	prods, err := h.Catalog.List()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load products"})
	}
	return c.JSON(prods)
}

// PATCH /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var in domain.ProductUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "invalid JSON"})
	}
	if err := h.Catalog.Update(id, in); err != nil {
		if errors.Is(err, domain.ErrNoFieldsToUpdate) {
			return c.JSON(fiber.Map{"success": false, "message": "nothing to update"})
		}
		if errors.Is(err, domain.ErrDuplicateName) {
			return c.JSON(fiber.Map{"success": false, "message": "a product with this name already exists"})
		}
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	applog.Audit(c, "admin.products.update", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}

// GET /admin/products/summary
func (h *AdminHandler) StockSummary(c *fiber.Ctx) error {
	rows, err := h.Stock.Summarize(true)
	if err != nil {
		applog.Error(c, "admin.stock.summary.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load summary"})
	}
	return c.JSON(rows)
}

// GET /admin/orders/by-phone/:phone4
func (h *AdminHandler) OrdersByPhone(c *fiber.Ctx) error {
	lines, err := h.Ledger.ListAll(c.Params("phone4"))
	if err != nil {
		applog.Error(c, "admin.orders.by_phone.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load orders"})
	}
	return c.JSON(lines)
}

// GET /admin/orders/summary
func (h *AdminHandler) OrderTotals(c *fiber.Ctx) error {
	totals, err := h.Ledger.TotalsByProduct()
	if err != nil {
		applog.Error(c, "admin.orders.summary.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load totals"})
	}
	return c.JSON(totals)
}

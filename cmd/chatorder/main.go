package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/crypto/bcrypt"

	"chatorder/internal/config"
	"chatorder/internal/http/handlers"
	applog "chatorder/internal/log"
	"chatorder/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// The admin guard compares request tokens against this hash.
	var adminHash []byte
	if cfg.AdminToken != "" {
		adminHash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminToken), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(helmet.New())

	// ---------- Routes ----------
	deps := handlers.NewDeps(db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "chat order server running"})
	})

	app.Post("/chat/order", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.webhook.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), deps.WebhookHandler.Receive)

	app.Get("/products", deps.ProductHandler.Page)

	admin := app.Group("/admin", handlers.RequireAdmin(adminHash))
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Get("/products", deps.AdminHandler.ListProducts)
	admin.Patch("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Get("/products/summary", deps.AdminHandler.StockSummary)
	admin.Get("/orders/by-phone/:phone4", deps.AdminHandler.OrdersByPhone)
	admin.Get("/orders/summary", deps.AdminHandler.OrderTotals)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

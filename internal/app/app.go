package app

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/suyeon1218/invoice-dashboard-backend/internal/cache"
	"github.com/suyeon1218/invoice-dashboard-backend/internal/config"
	"github.com/suyeon1218/invoice-dashboard-backend/internal/db"
	httpdelivery "github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/http"
)

type App struct {
	f   *fiber.App
	cfg config.Config
}

func New() *App {
	cfg := config.Load()

	pool, err := db.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	pages := cache.New(cfg.RedisAddr)

	f := fiber.New(fiber.Config{
		AppName: "invoice-dashboard-backend",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, pool, pages)

	return &App{f: f, cfg: cfg}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}

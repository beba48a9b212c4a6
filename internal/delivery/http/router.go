package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suyeon1218/invoice-dashboard-backend/internal/cache"
	"github.com/suyeon1218/invoice-dashboard-backend/internal/config"
	authhandler "github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/http/handler/auth"
	customerhandler "github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/http/handler/customer"
	dashhandler "github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/http/handler/dashboard"
	invoicehandler "github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/http/handler/invoice"
	"github.com/suyeon1218/invoice-dashboard-backend/internal/delivery/middleware"
	"github.com/suyeon1218/invoice-dashboard-backend/internal/repository/postgres"
	authuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/auth"
	customeruc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/customer"
	dashuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/dashboard"
	invoiceuc "github.com/suyeon1218/invoice-dashboard-backend/internal/usecase/invoice"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool, pages *cache.PageCache) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	userRepo := postgres.NewUserRepo(db)
	userFinder := &userFinderAdapter{repo: userRepo}
	loginUC := authuc.NewLoginUsecase(userFinder, authuc.BcryptComparer{}, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	loginHandler := authhandler.NewLoginHandler(loginUC)

	// Public route
	api.Post("/login", loginHandler.Handle)

	// Everything under the dashboard requires a session
	jwtMW := middleware.NewJWTMiddleware(cfg.JWTSecret)
	dashboard := api.Group("/dashboard", jwtMW.Protect())

	dashboard.Get("/me", authhandler.NewMeHandler().Handle)

	// Invoice wiring
	invoiceRepo := postgres.NewInvoiceRepo(db)
	invoiceStore := postgres.NewInvoiceStoreAdapter(invoiceRepo)
	invoiceUC := invoiceuc.New(invoiceStore, pages)
	invoiceH := invoicehandler.New(invoiceUC, pages)

	dashboard.Get("/invoices", invoiceH.List)
	dashboard.Post("/invoices", invoiceH.Create)
	dashboard.Get("/invoices/:id", invoiceH.GetByID)
	dashboard.Post("/invoices/:id", invoiceH.Update)
	dashboard.Delete("/invoices/:id", invoiceH.Delete)

	// Customer wiring
	customerRepo := postgres.NewCustomerRepo(db)
	customerStore := postgres.NewCustomerStoreAdapter(customerRepo)
	customerUC := customeruc.New(customerStore)
	customerH := customerhandler.New(customerUC)

	dashboard.Get("/customers", customerH.List)
	dashboard.Get("/customers/names", customerH.ListNames)

	// Dashboard overview wiring
	dashRepo := postgres.NewDashboardRepo(db)
	dashStore := postgres.NewDashboardStoreAdapter(dashRepo)
	dashUC := dashuc.New(dashStore)
	dashH := dashhandler.New(dashUC)

	dashboard.Get("/cards", dashH.Cards)
	dashboard.Get("/latest-invoices", dashH.LatestInvoices)
	dashboard.Get("/revenue", dashH.Revenue)
}

type userFinderAdapter struct {
	repo *postgres.UserRepo
}

func (a *userFinderAdapter) FindByEmail(ctx context.Context, email string) (*authuc.User, error) {
	r, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &authuc.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}, nil
}

package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/config"
	"github.com/Yash-Ghyar/Secure-E-Commerce/handlers"
	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/seclog"
	"github.com/Yash-Ghyar/Secure-E-Commerce/internal/tabular"
	"github.com/Yash-Ghyar/Secure-E-Commerce/middleware"
	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	cfg := config.LoadConfig()

	for _, dir := range []string{cfg.DataDir, cfg.UploadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			config.Log.Fatalw("Failed to create directory", "dir", dir, "error", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		config.Log.Fatalw("Failed to open database", "path", cfg.DatabasePath, "error", err)
	}

	if err := config.Migrate(db); err != nil {
		config.Log.Fatalw("Migration failed", "error", err)
	}

	// One-time migration from the spreadsheet era: a database with no
	// accounts pulls in whatever workbooks are lying in the data dir.
	if config.FreshDatabase(db) {
		if err := tabular.ImportWorkbooks(db, cfg.DataDir, config.Log); err != nil {
			config.Log.Warnw("Legacy import failed", "error", err)
		}
	}

	if err := config.SeedAdmin(db); err != nil {
		config.Log.Fatalw("Admin seeding failed", "error", err)
	}
	if os.Getenv("SEED_DEMO") == "true" {
		config.SeedDemo(db)
	}

	sec := seclog.New(cfg.SecurityLog, config.Log)

	app := fiber.New(fiber.Config{
		AppName:      "Secure E-Commerce",
		ServerHeader: "Secure E-Commerce Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)
	setupRoutes(app, db, sec, cfg)

	config.Log.Infow("Server starting", "host", cfg.HOST, "port", cfg.AppPort)
	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		config.Log.Fatalw("Failed to start server", "error", err)
	}
}

func setupRoutes(app *fiber.App, db *gorm.DB, sec *seclog.Logger, cfg *config.Config) {
	ah := handlers.NewAuthHandler(db, sec)
	uh := handlers.NewUserHandler(db, sec, cfg.DataDir)
	ph := handlers.NewProductHandler(db)
	oh := handlers.NewOrderHandler(db)
	uph := handlers.NewUploadHandler(cfg.UploadDir)

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	sellerOnly := middleware.RequireRole(models.RoleSeller)
	customerOnly := middleware.RequireRole(models.RoleCustomer)
	sellerOrAdmin := middleware.RequireRole(models.RoleSeller, models.RoleAdmin)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	auth := app.Group("/auth")
	auth.Post("/register", ah.Register)
	auth.Post("/login", ah.Login)
	auth.Post("/logout", ah.Logout)

	users := app.Group("/users", middleware.RequireAuth)
	users.Get("/me", ah.Me)
	users.Get("/dashboard", ah.Dashboard)
	users.Get("/admin", adminOnly, uh.AdminDashboard)
	users.Get("/admin/users", adminOnly, uh.ListUsers)
	users.Post("/admin/toggle/:username", adminOnly, uh.ToggleActive)
	users.Delete("/admin/:username", adminOnly, uh.DeleteUser)

	products := app.Group("/products")
	products.Get("/", ph.GetAllProducts)
	products.Get("/seller", middleware.RequireAuth, sellerOnly, ph.GetMyProducts)
	products.Post("/upload", middleware.RequireAuth, sellerOnly, uph.UploadImage)
	products.Post("/", middleware.RequireAuth, sellerOnly, ph.CreateProduct)
	products.Get("/:id", ph.GetProduct)
	products.Put("/:id", middleware.RequireAuth, sellerOnly, ph.UpdateProduct)
	products.Delete("/:id", middleware.RequireAuth, sellerOrAdmin, ph.DeleteProduct)

	orders := app.Group("/orders", middleware.RequireAuth)
	orders.Post("/buy/:id", customerOnly, oh.BuyProduct)
	orders.Get("/customer", customerOnly, oh.MyOrders)
	orders.Get("/seller", sellerOnly, oh.SellerOrders)
	orders.Get("/admin", adminOnly, oh.AllOrders)
	orders.Put("/:id/status", sellerOrAdmin, oh.UpdateStatus)

	app.Post("/admin/export", middleware.RequireAuth, adminOnly, uh.Export)

	// Uploaded product images
	app.Static("/uploads", cfg.UploadDir)
}

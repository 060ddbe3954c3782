package handler

import (
	"go-cafe-pos/internal/app"
	"go-cafe-pos/internal/metrics"
	"go-cafe-pos/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewServer builds the fiber app with every route mounted.
func NewServer(a *app.App, requestLog bool) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:      "Cafe POS v1.0",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    16 << 20,
	})

	if requestLog {
		server.Use(logger.New())
	}
	server.Use(recover.New())
	server.Use(cors.New())
	server.Use(metrics.Middleware())

	productHandler := NewProductHandler(a.Catalog)
	categoryHandler := NewCategoryHandler(a.Catalog)
	cartHandler := NewCartHandler(a.Cart)
	checkoutHandler := NewCheckoutHandler(a.Checkout)
	userHandler := NewUserHandler(a.Users)
	promoHandler := NewPromotionHandler(a.Promotions)
	reportHandler := NewReportHandler(a.Reports)

	api := server.Group("/api/v1")

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	api.Get("/cart", cartHandler.GetCart)
	api.Delete("/cart", cartHandler.ClearCart)
	api.Post("/cart/items", cartHandler.AddItem)
	api.Put("/cart/items/:id", cartHandler.SetQuantity)
	api.Delete("/cart/items/:id", cartHandler.RemoveItem)

	api.Post("/checkout/quote", checkoutHandler.Quote)
	api.Post("/checkout", checkoutHandler.Complete)

	api.Get("/users", userHandler.GetUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Post("/users", userHandler.CreateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	api.Get("/discounts", promoHandler.GetDiscounts)
	api.Post("/discounts", promoHandler.CreateDiscount)
	api.Put("/discounts/:id", promoHandler.UpdateDiscount)
	api.Delete("/discounts/:id", promoHandler.DeleteDiscount)
	api.Post("/discounts/:id/toggle", promoHandler.ToggleDiscount)

	api.Get("/fees", promoHandler.GetFees)
	api.Post("/fees", promoHandler.CreateFee)
	api.Put("/fees/:id", promoHandler.UpdateFee)
	api.Delete("/fees/:id", promoHandler.DeleteFee)
	api.Post("/fees/:id/toggle", promoHandler.ToggleFee)

	api.Get("/reports/sales", reportHandler.GetSales)
	api.Get("/reports/sales/export", reportHandler.ExportSales)

	server.Get("/metrics", metrics.Handler())

	// WebSocket Route
	server.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	server.Get("/ws", websocket.New(a.Hub.Serve))

	return server
}

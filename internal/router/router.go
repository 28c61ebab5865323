package router

import (
	"errors"

	"go-shop-api/internal/handler"
	"go-shop-api/internal/middleware"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/internal/ws"
	"go-shop-api/pkg/response"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

var errNilHub = errors.New("router: websocket hub is required")

// New wires repositories, services and handlers over db and returns the Fiber app.
// hub receives a change event for every successful write and is required.
func New(db *gorm.DB, hub *ws.Hub) (*fiber.App, error) {
	if hub == nil {
		return nil, errNilHub
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	ratingRepo := repository.NewRatingRepo(db)

	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, hub))
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, hub))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, hub))
	purchaseHandler := handler.NewPurchaseHandler(service.NewPurchaseService(purchaseRepo, hub))
	ratingHandler := handler.NewRatingHandler(service.NewRatingService(ratingRepo, hub))
	healthHandler := handler.NewHealthHandler(sqlDB)

	app := fiber.New(fiber.Config{
		AppName:      "Shop API v1.0",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New())

	app.Get("/healthz", healthHandler.Health)

	categories := app.Group("/categories")
	categories.Get("", categoryHandler.GetCategories)
	categories.Post("", categoryHandler.CreateCategory)
	categories.Get("/:id", categoryHandler.GetCategory)
	categories.Patch("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)

	products := app.Group("/products")
	products.Get("", productHandler.GetProducts)
	products.Post("", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Patch("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	purchases := app.Group("/purchases")
	purchases.Get("", purchaseHandler.GetPurchases)
	purchases.Post("", purchaseHandler.CreatePurchase)
	purchases.Get("/:id", purchaseHandler.GetPurchase)
	purchases.Patch("/:id", purchaseHandler.UpdatePurchase)
	purchases.Delete("/:id", purchaseHandler.DeletePurchase)

	ratings := app.Group("/ratings")
	ratings.Get("", ratingHandler.GetRatings)
	ratings.Post("", ratingHandler.CreateRating)
	ratings.Get("/:id", ratingHandler.GetRating)
	ratings.Patch("/:id", ratingHandler.UpdateRating)
	ratings.Delete("/:id", ratingHandler.DeleteRating)

	users := app.Group("/users")
	users.Get("", userHandler.GetUsers)
	users.Post("", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Patch("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	// Change feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !hub.Join(c) {
			return
		}
		defer hub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	return app, nil
}

// errorHandler keeps framework errors (unknown route, wrong method, panics)
// inside the same envelope as handler errors.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return response.Error(c, code, err.Error())
}

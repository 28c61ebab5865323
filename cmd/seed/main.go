package main

import (
	"context"

	"go-shop-api/internal/config"
	"go-shop-api/internal/repository"
	"go-shop-api/internal/service"
	"go-shop-api/pkg/database"
	"go-shop-api/pkg/logger"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// seed inserts one row per table through the services, so the demo data goes
// through the same create path as the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.IsProduction(), cfg.LogLevel)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer database.Close(db)

	ctx := context.Background()
	categories := service.NewCategoryService(repository.NewCategoryRepo(db), nil)
	products := service.NewProductService(repository.NewProductRepo(db), nil)
	users := service.NewUserService(repository.NewUserRepo(db), nil)
	purchases := service.NewPurchaseService(repository.NewPurchaseRepo(db), nil)
	ratings := service.NewRatingService(repository.NewRatingRepo(db), nil)

	categoryName := "Electronics"
	category, err := categories.CreateCategory(ctx, &service.CreateCategoryRequest{CategoryName: &categoryName})
	if err != nil {
		log.Fatal().Err(err).Msg("seed category")
	}

	productName := "Mechanical Keyboard"
	price := decimal.RequireFromString("89.90")
	product, err := products.CreateProduct(ctx, &service.CreateProductRequest{
		ProductName: &productName,
		Price:       &price,
		CategoryID:  category.ID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed product")
	}

	username := "demo"
	user, err := users.CreateUser(ctx, &service.CreateUserRequest{Username: &username})
	if err != nil {
		log.Fatal().Err(err).Msg("seed user")
	}

	if _, err := purchases.CreatePurchase(ctx, &service.CreatePurchaseRequest{
		ProductID: product.ID,
		UserID:    user.ID,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed purchase")
	}

	score := 5
	if _, err := ratings.CreateRating(ctx, &service.CreateRatingRequest{
		Rating:    &score,
		ProductID: product.ID,
		UserID:    user.ID,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed rating")
	}

	log.Info().
		Str("category_id", category.ID.String()).
		Str("product_id", product.ID.String()).
		Str("user_id", user.ID.String()).
		Msg("seed data created")
}

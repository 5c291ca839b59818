package config

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/api/routes"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/category"
	"Recipe-Share-Backend/pkg/collection"
	"Recipe-Share-Backend/pkg/ingredient"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/rating"
	"Recipe-Share-Backend/pkg/recipe"
	"Recipe-Share-Backend/pkg/search"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Moscow",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	aggregator := rating.NewAggregator()

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db, aggregator)
	collectionRepository := collection.NewCollectionRepository(db)
	searchRepository := search.NewSearchRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	categoryService := category.NewCategoryService(categoryRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, s3)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository)
	searchService := search.NewSearchService(searchRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, collectionService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		IngredientHandler: ingredientHandler,
		CollectionHandler: collectionHandler,
		SearchHandler:     searchHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

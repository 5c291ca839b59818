package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	IngredientHandler handlers.IngredientHandler
	CollectionHandler handlers.CollectionHandler
	SearchHandler     handlers.SearchHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Categories()
	c.Ingredients()
	c.Collections()
	c.Search()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	recipes := c.App.Group("/api/v1/recipes")
	// recipe routes
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/latest", c.RecipeHandler.GetLatestRecipes)
		recipes.Get("/mine", auth, c.RecipeHandler.GetMyRecipes)
		recipes.Get("/:id", optional, c.RecipeHandler.GetRecipeDetail)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/comments", auth, c.RecipeHandler.AddComment)
		recipes.Post("/:id/rating", auth, c.RecipeHandler.RateRecipe)
		recipes.Delete("/:id/rating", auth, c.RecipeHandler.RemoveRating)
		recipes.Post("/image", auth, c.RecipeHandler.UploadRecipeImage)
		recipes.Delete("/image/:id", auth, c.RecipeHandler.DeleteRecipeImage)
	}
}

func (c *Config) Categories() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	categories := c.App.Group("/api/v1/categories")
	{
		categories.Get("", c.CategoryHandler.GetCategories)
		categories.Get("/:slug", c.CategoryHandler.GetCategoryBySlug)
		categories.Post("", auth, c.CategoryHandler.CreateCategory)
	}
}

func (c *Config) Ingredients() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ingredients := c.App.Group("/api/v1/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/search", c.IngredientHandler.SearchIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
		ingredients.Post("", auth, c.IngredientHandler.ProposeIngredient)
		ingredients.Delete("/:id", auth, c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Collections() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optional := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	collections := c.App.Group("/api/v1/collections")
	{
		collections.Get("/public", c.CollectionHandler.GetPublicCollections)
		collections.Post("/items", auth, c.CollectionHandler.AddRecipe)
		collections.Delete("/items", auth, c.CollectionHandler.RemoveRecipe)

		collections.Get("", auth, c.CollectionHandler.GetMyCollections)
		collections.Post("", auth, c.CollectionHandler.CreateCollection)
		collections.Get("/:id", optional, c.CollectionHandler.GetCollectionDetail)
		collections.Put("/:id", auth, c.CollectionHandler.UpdateCollection)
		collections.Delete("/:id", auth, c.CollectionHandler.DeleteCollection)
		collections.Post("/:id/toggle/:recipe_id", auth, c.CollectionHandler.ToggleRecipe)
	}
}

func (c *Config) Search() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/api/v1/search", c.SearchHandler.SearchRecipes)
	c.App.Get("/api/v1/search.json", c.SearchHandler.SearchRecipesJSON)
	c.App.Post("/api/v1/admin/reconcile-ratings", auth, c.SearchHandler.ReconcileRatings)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

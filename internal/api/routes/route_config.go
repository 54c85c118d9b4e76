package routes

import (
	"BulkBlitz-Backend/internal/api/handlers"
	"BulkBlitz-Backend/internal/middleware"
	"BulkBlitz-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	ProfileHandler   handlers.ProfileHandler
	MealHandler      handlers.MealHandler
	AnalysisHandler  handlers.AnalysisHandler
	DashboardHandler handlers.DashboardHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Profile()
	c.Meals()
	c.Analysis()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware(c.JWTService))
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Put("", c.ProfileHandler.UpdateProfile)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.JWTService))
	meals.Post("", c.MealHandler.CreateMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Get("/:id", c.MealHandler.GetMealDetails)
	meals.Patch("/:id/archive", c.MealHandler.ArchiveMeal)
}

func (c *Config) Analysis() {
	auth := c.Middleware.BareAuthMiddleware(c.JWTService)
	c.App.Post("/api/analyze-meal", auth, c.AnalysisHandler.AnalyzeMeal)
	c.App.Post("/api/analyze-meal-image", auth, c.AnalysisHandler.AnalyzeMealImage)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))
	dashboard.Get("/weekly-overview", c.DashboardHandler.GetWeeklyOverview)
	dashboard.Get("/weekly-progress", c.DashboardHandler.GetWeeklyProgress)
	dashboard.Get("/summary", c.DashboardHandler.GetSummary)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

package api

import (
	"voyagr/docs"
	"voyagr/internal/api/handlers"
	"voyagr/pkg/auth"
	"voyagr/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	expenseHandler *handlers.ExpenseHandler,
	reportHandler *handlers.ReportHandler,
	insightHandler *handlers.InsightHandler,
	categoryHandler *handlers.CategoryHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing the docs package registers the swagger spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/categories", categoryHandler.ListCategories)

	trips := protected.Group("/trips")
	trips.Post("", tripHandler.CreateTrip)
	trips.Get("", tripHandler.ListTrips)
	trips.Get("/:id", tripHandler.GetTrip)
	trips.Put("/:id", tripHandler.UpdateTrip)
	trips.Delete("/:id", tripHandler.DeleteTrip)

	trips.Post("/:id/expenses", expenseHandler.AddExpense)
	trips.Get("/:id/expenses", expenseHandler.ListExpenses)
	trips.Put("/:id/expenses/:expenseID", expenseHandler.UpdateExpense)
	trips.Delete("/:id/expenses/:expenseID", expenseHandler.DeleteExpense)

	trips.Get("/:id/report", reportHandler.GetReport)
	trips.Get("/:id/report/heatmap", reportHandler.GetHeatmap)

	trips.Post("/:id/insights", insightHandler.GenerateInsights)
	trips.Get("/:id/insights", insightHandler.ListInsights)
	trips.Post("/:id/forecast", insightHandler.GenerateForecast)

	return app
}

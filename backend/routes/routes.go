package routes

import (
	"cerebritos/backend/config"
	"cerebritos/backend/controllers"
	"cerebritos/backend/generation"
	"cerebritos/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, genService *generation.Service) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Generation routes stay public so the learner app can call them
	// before the student signs in
	generationController := controllers.NewGenerationController(genService)
	app.Post("/api/generate/quiz", generationController.GenerateQuiz)
	app.Post("/api/generate/feedback", generationController.GenerateFeedback)
	app.Post("/api/generate/adapt", generationController.AdaptDifficulty)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Children / dashboard routes
	childrenController := controllers.NewChildrenController(db, cfg)
	children := app.Group("/api/children", authMiddleware)
	children.Get("/", childrenController.GetChildren)
	children.Post("/link", childrenController.LinkChild)
	children.Post("/sample", childrenController.CreateSampleChild)
	children.Get("/:id/dashboard", childrenController.GetChildDashboard)

	// Attempt writeback from the learner app
	attemptsController := controllers.NewAttemptsController(db, cfg)
	app.Post("/api/attempts", authMiddleware, attemptsController.RecordAttempt)
}

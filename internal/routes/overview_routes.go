package routes

import (
	"airmen-backend/internal/handler"
	"airmen-backend/internal/middleware"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOverviewRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewOverviewRepository(db)
	hdl := handler.NewOverviewHandler(repo)

	admin := app.Group("/api/admin/overview", middleware.Auth, middleware.Role("Admin"))
	admin.Get("/", hdl.GetStats)
}

package routes

import (
	"airmen-backend/internal/handler"
	"airmen-backend/internal/middleware"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(repo)

	app.Post("/api/login", hdl.Login)

	admin := app.Group("/api/admin/users", middleware.Auth, middleware.Role("Admin"))
	admin.Post("/", hdl.Register)
}

package routes

import (
	"airmen-backend/internal/handler"
	"airmen-backend/internal/middleware"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAirmanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAirmanRepository(db)
	hdl := handler.NewAirmanHandler(repo)
	dir := handler.NewDirectoryHandler(repo)

	admin := app.Group("/api/admin/airmen", middleware.Auth, middleware.Role("Admin"))
	admin.Get("/", dir.List)
	admin.Get("/export", dir.Export)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Patch("/:id/status", hdl.PatchStatus)
	admin.Delete("/:id", hdl.Delete)
}

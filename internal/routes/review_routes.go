package routes

import (
	"airmen-backend/internal/handler"
	"airmen-backend/internal/middleware"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReviewRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAirmanRepository(db)
	hdl := handler.NewReviewHandler(repo)

	admin := app.Group("/api/admin/review", middleware.Auth, middleware.Role("Admin"))
	admin.Get("/", hdl.ListPending)
	admin.Post("/:id/approve", hdl.Approve)
	admin.Post("/:id/reject", hdl.Reject)
}

package routes

import (
	"airmen-backend/internal/handler"
	"airmen-backend/internal/repository"
	"airmen-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated submission gateway.
func SetupPublicRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAirmanRepository(db)
	hdl := handler.NewPublicHandler(repo, service.NewMailNotifier())

	app.Post("/api/submit", hdl.Submit)
}

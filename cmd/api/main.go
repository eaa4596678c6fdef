package main

import (
	"log"

	"airmen-backend/config"
	"airmen-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	config.ConnectDB()

	app := fiber.New()

	app.Use(cors.New()) // admin SPA and public form run on other origins
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupAirmanRoutes(app, config.DB)
	routes.SetupReviewRoutes(app, config.DB)
	routes.SetupOverviewRoutes(app, config.DB)
	routes.SetupPublicRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	log.Println("server listening on :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}

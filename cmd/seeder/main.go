package main

import (
	"log"

	"airmen-backend/config"
	"airmen-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
}

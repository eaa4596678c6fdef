package config

import (
	"fmt"

	"airmen-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the MySQL connection and keeps the schema in sync.
// Connection settings come from the environment so local dev (XAMPP-style
// root with no password) works without a .env file.
func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "baf_airmen_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	// utf8mb4 matters here: names are stored in Bangla script.
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Airman{})

	DB = db
}

package initializers

import (
	"log"

	"github.com/Jezzej/craftique/internals/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Global DB handle shared across the application
var DB *gorm.DB

func ConnectToDb() {
	var err error
	dsn := config.GetEnv("DB_URL")
	log.Println("Connecting to database at:", dsn)

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to DB")
	}
}

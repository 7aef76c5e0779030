package db

import (
	"fmt"
	"log"

	"github.com/khidmathub/khidmat-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.Customer{},
		&models.ServiceProvider{},
		&models.Admin{},
		&models.ServiceCategory{},
		&models.SubService{},
		&models.ServiceRequest{},
		&models.Review{},
		&models.Chat{},
		&models.Message{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}

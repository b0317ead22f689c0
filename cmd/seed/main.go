package main

import (
	"log"
	"os"
	"time"

	"github.com/contest-hub/backend/internal/config"
	"github.com/contest-hub/backend/internal/database"
	"github.com/contest-hub/backend/internal/models"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminName := os.Getenv("ADMIN_NAME")

	if adminEmail == "" {
		log.Fatal("Missing environment variable: ADMIN_EMAIL")
	}

	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		if admin.Role != models.RoleAdmin {
			if err := database.DB.Model(&admin).Update("role", models.RoleAdmin).Error; err != nil {
				log.Fatal("Failed to promote admin:", err)
			}
			log.Println("Existing user promoted to admin:", admin.Email)
		} else {
			log.Println("Admin user already exists:", admin.Email)
		}
	} else {
		admin = models.User{
			ID:    uuid.New(),
			Email: adminEmail,
			Name:  adminName,
			Role:  models.RoleAdmin,
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		log.Println("Admin user created:", admin.Email)
	}

	// A couple of approved demo contests so a fresh instance isn't empty.
	demos := []models.Contest{
		{
			ID:               uuid.New(),
			Name:             "Logo Design Sprint",
			Description:      "Design a logo for an open-source project.",
			Price:            5,
			PrizeMoney:       100,
			TaskInstructions: "Submit a link to your design.",
			Tags:             []string{"design", "branding"},
			Deadline:         time.Now().AddDate(0, 1, 0),
			CreatorEmail:     adminEmail,
			Status:           models.ContestApproved,
		},
		{
			ID:               uuid.New(),
			Name:             "Short Story Contest",
			Description:      "Write a short story under 2000 words.",
			Price:            3,
			PrizeMoney:       50,
			TaskInstructions: "Submit a link to your story.",
			Tags:             []string{"writing"},
			Deadline:         time.Now().AddDate(0, 1, 0),
			CreatorEmail:     adminEmail,
			Status:           models.ContestApproved,
		},
	}

	for _, demo := range demos {
		var existing models.Contest
		if err := database.DB.Where("name = ?", demo.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&demo).Error; err != nil {
			log.Fatal("Failed to seed contest:", err)
		}
		log.Println("Seeded contest:", demo.Name)
	}
}

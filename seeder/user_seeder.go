package seeder

import (
	"context"
	"log"
	"time"

	"station-attendance/models"
	"station-attendance/repository"
)

var demoUsers = []models.UserCreatePayload{
	{UserID: "EMP001", UserName: "Asha Rao", Email: "asha.rao@example.com", Role: models.RoleManager},
	{UserID: "EMP002", UserName: "Bilal Khan", Email: "bilal.khan@example.com"},
	{UserID: "EMP003", UserName: "Chitra Iyer", Email: "chitra.iyer@example.com"},
	{UserID: "EMP004", UserName: "Deepak Joshi", Email: "deepak.joshi@example.com"},
}

// SeedUsers adds the demo users when no user exists yet.
func SeedUsers(userRepo *repository.UserRepository) {
	log.Println("🌱 Seeding users...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if existing := userRepo.GetAll(ctx); len(existing) > 0 {
		log.Printf("✅ %d user(s) already present, skipping user seeding.", len(existing))
		return
	}

	for _, payload := range demoUsers {
		if _, err := userRepo.CreateUser(ctx, payload); err != nil {
			log.Printf("❌ Failed to save user %s: %v", payload.UserID, err)
			continue
		}
		log.Printf("✔ User %s (%s) added.", payload.UserID, payload.UserName)
	}

	log.Println("✅ User seeding finished.")
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"servineta/internal/adapter/persistence/repository"
	"servineta/internal/domain/entities"
	"servineta/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a local environment: the base category set, one account per role
// and a handful of fake providers with catalog services. Safe to run more
// than once against an empty database only; existing ids are not checked.

const defaultPassword = "password123"

var categoryNames = []string{
	"Health", "Beauty", "Wellness", "Sports",
	"Education", "Home", "Maintenance", "Other",
}

var serviceNames = []string{
	"Haircut", "Massage", "Personal Training", "Math Tutoring",
	"House Cleaning", "Plumbing Repair", "Manicure", "Yoga Class",
}

func main() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	users := repository.NewUserDynamoRepository(ddb)
	categories := repository.NewCategoryDynamoRepository(ddb)
	services := repository.NewServiceDynamoRepository(ddb)

	gofakeit.Seed(0)
	now := time.Now().UTC()

	categoryIDs := make([]string, 0, len(categoryNames))
	for _, name := range categoryNames {
		c, err := categories.Create(ctx, entities.Category{
			ID:          uuid.NewString(),
			Name:        name,
			Slug:        slug(name),
			Description: gofakeit.Sentence(8),
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Fatalf("seed category %s: %v", name, err)
		}
		categoryIDs = append(categoryIDs, c.ID)
	}
	log.Printf("[seed] created %d categories", len(categoryIDs))

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed password hash: %v", err)
	}

	for _, acc := range []struct {
		name  string
		email string
		role  entities.Role
	}{
		{"Super Admin", "superadmin@servineta.local", entities.RoleSuperAdmin},
		{"Admin", "admin@servineta.local", entities.RoleAdmin},
		{"Demo User", "user@servineta.local", entities.RoleUser},
	} {
		_, err := users.Create(ctx, entities.User{
			ID:           uuid.NewString(),
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: string(hash),
			Role:         acc.role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatalf("seed account %s: %v", acc.email, err)
		}
		log.Printf("[seed] created %s account %s (password %q)", acc.role, acc.email, defaultPassword)
	}

	for i := 0; i < 5; i++ {
		provider, err := users.Create(ctx, entities.User{
			ID:           uuid.NewString(),
			Name:         gofakeit.Name(),
			Email:        fmt.Sprintf("provider%d@servineta.local", i+1),
			PasswordHash: string(hash),
			Role:         entities.RoleUser,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatalf("seed provider %d: %v", i+1, err)
		}

		for j := 0; j < 3; j++ {
			name := serviceNames[(i*3+j)%len(serviceNames)]
			_, err := services.Create(ctx, entities.Service{
				ID:          uuid.NewString(),
				OwnerID:     provider.ID,
				CategoryID:  categoryIDs[(i+j)%len(categoryIDs)],
				Name:        name,
				Description: gofakeit.Sentence(12),
				Price:       gofakeit.Price(10, 200),
				Gender:      entities.GenderBoth,
				Active:      true,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				log.Fatalf("seed service %s for provider %s: %v", name, provider.ID, err)
			}
		}
	}
	log.Printf("[seed] created 5 providers with 3 services each")
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

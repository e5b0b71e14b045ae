package main

import (
	"context"
	"os"
	"time"

	"github.com/marketing-cms-api/internal/auth"
	"github.com/marketing-cms-api/internal/config"
	"github.com/marketing-cms-api/internal/database"
	"github.com/marketing-cms-api/internal/models"
	"github.com/marketing-cms-api/internal/repository"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/pkg/logger"
	"github.com/rs/zerolog"
)

// Seeds the database with an admin account and starter site content.
// Admin credentials come from ADMIN_EMAIL and ADMIN_PASSWORD; existing
// rows are left alone so the command is safe to re-run.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal().Msg("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	repos := repository.New(db)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	services := service.NewServices(repos, jwtManager, cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin := seedAdmin(ctx, services, repos, adminEmail, adminPassword, log)
	seedContent(ctx, services, admin, log)

	log.Info().Msg("Seed completed")
}

func seedAdmin(ctx context.Context, services *service.Services, repos *repository.Repositories, email, password string, log zerolog.Logger) *models.User {
	existing, err := repos.User.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to look up admin account")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("Admin account already exists")
		return existing
	}

	admin, err := services.Auth.CreateUser(ctx, &models.UserCreateRequest{
		Email:    email,
		Name:     "Administrator",
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin account")
	}

	log.Info().Str("email", email).Msg("Admin account created")
	return admin
}

func seedContent(ctx context.Context, services *service.Services, admin *models.User, log zerolog.Logger) {
	tags, err := services.Tag.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list tags")
	}
	if len(tags) > 0 {
		log.Info().Msg("Content already seeded, skipping")
		return
	}

	_, err = services.Blog.Create(ctx, admin.ID, &models.BlogCreateRequest{
		Title:     "Welcome to Our Blog",
		Content:   "This is the first post. Replace it with your own content.",
		Excerpt:   "The first post on this site.",
		Image:     "https://placehold.co/1200x630.png",
		Published: true,
		Featured:  true,
		Tags:      []string{"Announcements"},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed blog post")
	}

	features := []models.FeatureCreateRequest{
		{Title: "Fast Setup", Description: "Launch a content-backed site in minutes.", Icon: "rocket"},
		{Title: "Simple Editing", Description: "Manage posts, pages, and navigation from one API.", Icon: "pencil"},
		{Title: "Built-in Audience Tools", Description: "Contact inbox and newsletter out of the box.", Icon: "users"},
	}
	for i := range features {
		order := i
		features[i].Order = &order
		if _, err := services.Feature.Create(ctx, &features[i]); err != nil {
			log.Fatal().Err(err).Str("title", features[i].Title).Msg("Failed to seed feature")
		}
	}

	menuItems := []models.MenuItemCreateRequest{
		{Title: "Home", Path: "/"},
		{Title: "Blog", Path: "/blog"},
		{Title: "Contact", Path: "/contact"},
	}
	for i := range menuItems {
		order := i
		menuItems[i].Order = &order
		if _, err := services.Menu.Create(ctx, &menuItems[i]); err != nil {
			log.Fatal().Err(err).Str("title", menuItems[i].Title).Msg("Failed to seed menu item")
		}
	}

	log.Info().Msg("Starter content created")
}

package setup

import (
	"context"
	"fmt"

	"github.com/eduforum-dev/eduforum/internal/config"
	"github.com/eduforum-dev/eduforum/internal/domain"
	"github.com/eduforum-dev/eduforum/internal/handler"
	"github.com/eduforum-dev/eduforum/internal/jwt"
	"github.com/eduforum-dev/eduforum/internal/markdown"
	"github.com/eduforum-dev/eduforum/internal/middleware"
	"github.com/eduforum-dev/eduforum/internal/service"
	"github.com/eduforum-dev/eduforum/internal/storage/memory"
	"github.com/eduforum-dev/eduforum/internal/storage/pg"
	"github.com/eduforum-dev/eduforum/internal/utils"
)

// Storage is the full surface the application needs from a store.
type Storage interface {
	service.ForumStorage
	LoadCategories(ctx context.Context) ([]domain.Category, error)
	Ping(ctx context.Context) error
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	var storage Storage
	switch cfg.Public.Store {
	case "", "pg":
		pgStorage, err := pg.New(cfg)
		if err != nil {
			return nil, err
		}
		storage = pgStorage
	case "memory":
		storage = memory.New()
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Public.Store)
	}

	categories, err := seedCategories(context.Background(), storage, cfg.Public.Categories)
	if err != nil {
		return nil, err
	}
	registry := service.NewCategoryRegistry(categories)

	forum := service.NewForum(storage, registry, &utils.PostValidator{}, &utils.CommentValidator{})
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	h := handler.New(forum, markdown.New(), storage)
	authMw := middleware.NewAuth(jwtService)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: authMw,
		Jwt:            jwtService,
	}, nil
}

// seedCategories applies the configured category set, keeping post counts
// already derived in storage. The config is authoritative for the set itself.
func seedCategories(ctx context.Context, storage Storage, seeds []config.CategorySeed) ([]domain.Category, error) {
	stored, err := storage.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.CategoryId]int, len(stored))
	for _, c := range stored {
		counts[c.Id] = c.PostCount
	}

	categories := make([]domain.Category, 0, len(seeds))
	for _, seed := range seeds {
		category := domain.Category{
			Id:           seed.Id,
			Name:         seed.Name,
			Description:  seed.Description,
			PostCount:    counts[seed.Id],
			IsRestricted: seed.Restricted,
		}
		for _, r := range seed.AllowedRoles {
			category.AllowedRoles = append(category.AllowedRoles, domain.Role(r))
		}
		if err := storage.SaveCategory(ctx, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

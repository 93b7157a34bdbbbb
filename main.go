package main

import (
	"context"
	"log"

	api "photocards-backend/cmd/api"
	"photocards-backend/internal/auth/token"
	authUsecase "photocards-backend/internal/auth/usecase"
	cardRepo "photocards-backend/internal/card/repository"
	cardUsecase "photocards-backend/internal/card/usecase"
	userRepo "photocards-backend/internal/user/repository"
	userUsecase "photocards-backend/internal/user/usecase"
	"photocards-backend/pkg/config"
	"photocards-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := database.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Initialize repositories (dependency injection)
	users := userRepo.NewUserRepository(db)
	cards := cardRepo.NewCardRepository(db)

	// Initialize use cases
	tokens := token.NewService(cfg)
	authUc := authUsecase.NewAuthUsecase(users, tokens)
	userUc := userUsecase.NewUserUsecase(users)
	cardUc := cardUsecase.NewCardUsecase(cards)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, cardUc, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

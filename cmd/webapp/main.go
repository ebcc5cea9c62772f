package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authController "item_simulator/internal/auth/controller"
	authRepository "item_simulator/internal/auth/repository"
	authUsecase "item_simulator/internal/auth/usecase"

	characterController "item_simulator/internal/character/controller"
	characterRepository "item_simulator/internal/character/repository"
	characterUsecase "item_simulator/internal/character/usecase"

	inventoryController "item_simulator/internal/inventory/controller"
	inventoryRepository "item_simulator/internal/inventory/repository"
	inventoryUsecase "item_simulator/internal/inventory/usecase"

	itemController "item_simulator/internal/item/controller"
	itemRepository "item_simulator/internal/item/repository"
	itemUsecase "item_simulator/internal/item/usecase"

	shopController "item_simulator/internal/shop/controller"
	shopRepository "item_simulator/internal/shop/repository"
	shopUsecase "item_simulator/internal/shop/usecase"

	"item_simulator/internal/service/logger"
	"item_simulator/internal/service/middleware"
	"item_simulator/internal/service/router"
	"item_simulator/internal/service/session"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()
	db := middleware.DbConnect()

	accessToken, err := middleware.NewJwtToken(os.Getenv("ACCESS_TOKEN_SECRET_KEY"), middleware.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create access token service: %v", err)
	}
	refreshToken, err := middleware.NewJwtToken(os.Getenv("REFRESH_TOKEN_SECRET_KEY"), middleware.RefreshTokenTTL)
	if err != nil {
		log.Fatalf("Failed to create refresh token service: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	accountRepo := authRepository.NewAuthRepository(db)

	sessions := session.NewRegistry()
	tokens, err := accountRepo.LoadRefreshTokens(context.Background())
	if err != nil {
		log.Fatalf("Failed to load refresh tokens: %v", err)
	}
	sessions.Seed(tokens)
	logger.AccessLogger.Info("Seeded session registry", zap.Int("sessions", sessions.Len()))

	guard := middleware.NewAuthGuard(accessToken, refreshToken, sessions)

	authUseCase := authUsecase.NewAuthUsecase(accountRepo, accessToken, refreshToken, sessions)
	authHandler := authController.NewAuthHandler(authUseCase)

	characterRepo := characterRepository.NewCharacterRepository(db)
	characterUseCase := characterUsecase.NewCharacterUsecase(characterRepo)
	characterHandler := characterController.NewCharacterHandler(characterUseCase, accessToken)

	inventoryRepo := inventoryRepository.NewInventoryRepository(db)
	inventoryUseCase := inventoryUsecase.NewInventoryUsecase(inventoryRepo)
	inventoryHandler := inventoryController.NewInventoryHandler(inventoryUseCase)

	itemRepo := itemRepository.NewItemRepository(db)
	itemUseCase := itemUsecase.NewItemUsecase(itemRepo)
	itemHandler := itemController.NewItemHandler(itemUseCase)

	shopRepo := shopRepository.NewShopRepository(db)
	shopUseCase := shopUsecase.NewShopUsecase(shopRepo)
	shopHandler := shopController.NewShopHandler(shopUseCase)

	mainRouter := router.SetUpRoutes(guard, authHandler, characterHandler, inventoryHandler, itemHandler, shopHandler)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)

	server := &http.Server{
		Addr:    os.Getenv("BACKEND_URL"),
		Handler: middleware.EnableCORS(mainRouter),
	}

	go func() {
		fmt.Printf("Starting HTTP server on address %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error on starting server: %s", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	fmt.Println("Server stopped")
}

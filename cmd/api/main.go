package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"podartshop/internal/adapter/api"
	"podartshop/internal/adapter/api/handler"
	"podartshop/internal/adapter/api/router"
	"podartshop/internal/adapter/repository"
	"podartshop/internal/domain/service"
	"podartshop/internal/infrastructure/printify"
	"podartshop/internal/usecase"
	"podartshop/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	printifyClient := printify.NewClient(cfg.PrintifyAPIBase, cfg.PrintifyAPIToken, cfg.PrintifyShopID)
	checkoutService := service.NewStripeCheckoutService(cfg.StripeAPIKey, cfg.StripeAPIBase)

	syncUseCase := usecase.NewSyncUseCase(printifyClient, productRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(productRepo, orderRepo, checkoutService, cfg.FrontendURL)
	fulfillmentUseCase := usecase.NewFulfillmentUseCase(orderRepo, productRepo, printifyClient)

	handler.SetupHealthHandler(firestoreClient, cfg)
	handler.Setup(syncUseCase, catalogUseCase, wishlistUseCase, checkoutUseCase, fulfillmentUseCase, cfg)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"repairlink/internal/adapter/api"
	"repairlink/internal/adapter/api/handler"
	apimiddleware "repairlink/internal/adapter/api/middleware"
	"repairlink/internal/adapter/api/router"
	"repairlink/internal/adapter/repository"
	"repairlink/internal/domain/service"
	"repairlink/internal/usecase"
	"repairlink/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	repairRepo := repository.NewFirestoreRepairRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	deviceRepo := repository.NewFirestoreDeviceRepository(firestoreClient)

	officialSource := service.NewOfficialPriceSource(cfg.OfficialPriceURL, cfg.UsdToKes, cfg.ImportMultiplier)
	retailerSources := []service.PriceSource{
		service.NewRetailerPriceSource("fixit-nairobi", "https://fixit.co.ke/?s=%s&post_type=product"),
		service.NewRetailerPriceSource("phoneplace-kenya", "https://phoneplacekenya.com/?s=%s&post_type=product"),
	}

	pricingCfg := usecase.DefaultPricingConfig()
	pricingCfg.OfficialWeight = cfg.OfficialWeight
	pricingCfg.LaborRate = cfg.LaborRate
	pricingCfg.LaborFloor = cfg.LaborFloor
	pricingCfg.SourceTimeout = cfg.PriceSourceTimeout

	repairUseCase := usecase.NewRepairUseCase(repairRepo, userRepo, cfg.ShippingFlatFee, cfg.ScheduleOffset, cfg.CommissionCut)
	pricingUseCase := usecase.NewPricingUseCase(officialSource, retailerSources, pricingCfg)
	technicianUseCase := usecase.NewTechnicianUseCase(userRepo)
	escrowUseCase := usecase.NewEscrowUseCase(repairRepo)
	deviceUseCase := usecase.NewDeviceUseCase(deviceRepo, userRepo)

	handler.Setup(repairUseCase, pricingUseCase, technicianUseCase, escrowUseCase, deviceUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

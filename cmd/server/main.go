package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "gondola-rental-backend/internal/api/http"
	"gondola-rental-backend/internal/config"
	"gondola-rental-backend/internal/db/migrations"
	"gondola-rental-backend/internal/logger"
	"gondola-rental-backend/internal/repository/postgres"
	"gondola-rental-backend/internal/service"
	"gondola-rental-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Environment overrides may come from a local .env file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Gondola Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Apply pending migrations
	if err := migrations.Up(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Blob Storage
	blobs, err := storage.New(cfg.Storage, db)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	logger.Info("Blob storage initialized", "type", cfg.Storage.Type)

	// Initialize Services
	documentSvc := service.NewDocumentService(store.DocumentRepository, blobs)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, documentSvc)
	clientSvc := service.NewClientService(store.ClientRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.DocumentRepository,
		documentSvc,
	)
	deliveryOrderSvc := service.NewDeliveryOrderService(
		store.DeliveryOrderRepository,
		store.RentalRepository,
		store.DocumentRepository,
		documentSvc,
	)
	logbookSvc := service.NewLogbookService(store.InspectionRepository, store.ShiftRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Handlers{
		Equipment:     equipmentSvc,
		Client:        clientSvc,
		Rental:        rentalSvc,
		DeliveryOrder: deliveryOrderSvc,
		Document:      documentSvc,
		Logbook:       logbookSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

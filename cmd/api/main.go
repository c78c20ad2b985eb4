package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Modern Trade Dashboard API
// @version         1.0
// @description     Backend for the retail/trade management dashboard: daily sales, inventory, competitor prices, vacations, realtime settings and messaging.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "postgres"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	database.Seed(db, adminPassword)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	competitorRepo := repository.NewCompetitorRepository(db)
	vacationRepo := repository.NewVacationRepository(db)
	marketRepo := repository.NewMarketRepository(db)
	companyRepo := repository.NewCompanyRepository(db)

	presence := service.NewPresenceTracker(userRepo, wsHub)
	userService := service.NewUserService(userRepo, wsHub)
	settingsService := service.NewSettingsService(settingsRepo, wsHub)
	notificationService := service.NewNotificationService(notificationRepo, wsHub)
	salesService := service.NewSalesService(saleRepo, wsHub)
	inventoryService := service.NewInventoryService(inventoryRepo, wsHub)
	competitorService := service.NewCompetitorService(competitorRepo, wsHub)
	vacationService := service.NewVacationService(vacationRepo, userRepo, wsHub)
	referenceService := service.NewReferenceService(marketRepo, companyRepo, wsHub)
	backupService := service.NewBackupService(
		userRepo, settingsRepo, notificationRepo,
		saleRepo, inventoryRepo, competitorRepo,
		vacationRepo, marketRepo, companyRepo,
	)

	// Initialize Handlers
	userHandler := handler.NewUserHandler(userService, presence)
	presenceHandler := handler.NewPresenceHandler(presence)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	notificationHandler := handler.NewNotificationHandler(notificationService, userRepo)
	salesHandler := handler.NewSalesHandler(salesService, userRepo)
	inventoryHandler := handler.NewInventoryHandler(inventoryService, userRepo)
	competitorHandler := handler.NewCompetitorHandler(competitorService, userRepo)
	vacationHandler := handler.NewVacationHandler(vacationService, userRepo)
	referenceHandler := handler.NewReferenceHandler(referenceService, userRepo)
	adminHandler := handler.NewAdminHandler(backupService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check doubles as the connectivity signal
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint: the connection is the user's session for presence
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret(), presence)
	})

	// Register API Routes
	api := router.Group("/api")
	userHandler.RegisterRoutes(api)
	presenceHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	salesHandler.RegisterRoutes(api)
	inventoryHandler.RegisterRoutes(api)
	competitorHandler.RegisterRoutes(api)
	vacationHandler.RegisterRoutes(api)
	referenceHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

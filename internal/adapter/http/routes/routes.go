package routes

import (
	"log"
	"os"
	"time"

	_ "paysadmin/docs" // This will be auto-generated
	"paysadmin/internal/adapter/http/handlers"
	"paysadmin/internal/adapter/http/middleware"
	repository2 "paysadmin/internal/adapter/persistence/repository"
	"paysadmin/internal/infrastructure/database"
	"paysadmin/internal/infrastructure/paysapi"
	"paysadmin/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ddb := database.ConnectDynamoDB()
	sessionRepo := repository2.NewSessionDynamoRepository(ddb)

	baseURL := os.Getenv("PAYS_API_BASE_URL")
	if baseURL == "" {
		log.Fatalf("PAYS_API_BASE_URL is required")
	}
	gateway := paysapi.NewClient(baseURL, logger)

	authUseCase := usecase.NewAuthUseCase(gateway, sessionRepo, sessionTTLFromEnv())
	directoryUseCase := usecase.NewDirectoryUseCase(gateway)
	debtUseCase := usecase.NewDebtActionUseCase(gateway)
	documentUseCase := usecase.NewDocumentUseCase(gateway)

	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(directoryUseCase)
	debtHandler := handlers.NewDebtHandler(debtUseCase)
	aadhaarHandler := handlers.NewAadhaarHandler(documentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAdminRoutes(v1, middleware.SessionAuth(authUseCase), authHandler, userHandler, debtHandler, aadhaarHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func sessionTTLFromEnv() time.Duration {
	hours := getenvDefault("SESSION_TTL_HOURS", "12")
	d, err := time.ParseDuration(hours + "h")
	if err != nil {
		log.Printf("Invalid SESSION_TTL_HOURS=%q, using default", hours)
		return 0
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "servineta/docs" // This will be auto-generated
	"servineta/internal/adapter/http/handlers"
	repository2 "servineta/internal/adapter/persistence/repository"
	"servineta/internal/infrastructure/database"
	"servineta/internal/infrastructure/mail"
	"servineta/internal/infrastructure/storage"
	"servineta/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	fileStore := storage.ConnectS3()
	mailer := mail.ConnectSES()

	userRepo := repository2.NewUserDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	fileRepo := repository2.NewFileDynamoRepository(ddb)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	ttlHours, err := strconv.Atoi(getenvDefault("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, secret, time.Duration(ttlHours)*time.Hour)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, fileRepo, fileStore)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	userAdminUseCase := usecase.NewUserAdminUseCase(userRepo, mailer)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	profileUseCase := usecase.NewProfileUseCase(userRepo, fileRepo, fileStore)
	lifecycleUseCase := usecase.NewRequestLifecycleUseCase(
		requestRepo, quotationRepo, serviceRepo, userRepo,
		notificationRepo, fileRepo, fileStore, mailer,
	)

	authHandler := handlers.NewAuthHandler(authUseCase)
	serviceHandler := handlers.NewServiceHandler(catalogUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)
	userHandler := handlers.NewUserHandler(userAdminUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	requestHandler := handlers.NewServiceRequestHandler(lifecycleUseCase)
	quotationHandler := handlers.NewQuotationHandler(lifecycleUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, secret)
	addMarketplaceRoutes(v1, secret, serviceHandler, categoryHandler, requestHandler, quotationHandler, notificationHandler, profileHandler)
	addAdminRoutes(v1, secret, categoryHandler, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package routes

import (
	"log"
	"os"
	"strconv"

	_ "delivery_hub/docs" // This will be auto-generated
	"delivery_hub/internal/adapter/http/handlers"
	"delivery_hub/internal/adapter/http/middleware"
	repository2 "delivery_hub/internal/adapter/persistence/repository"
	authinfra "delivery_hub/internal/infrastructure/auth"
	"delivery_hub/internal/infrastructure/geo"
	"delivery_hub/internal/infrastructure/logger"
	"delivery_hub/internal/infrastructure/weather"
	"delivery_hub/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger.Init()
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
	jwtSecret := getenvDefault("JWT_SECRET", "dev-only-secret")

	sessionRepo := repository2.NewSessionMemoryRepository()
	pointRepo := repository2.NewSupportPointMemoryRepository()
	rewardRepo := repository2.NewRewardMemoryRepository()

	authGateway := authinfra.NewMockAuthGateway()
	weatherGateway := weather.NewMockWeatherGateway()
	locationGateway := geo.NewMockLocationGateway()
	navigationGateway := geo.NewNavigationGateway()

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, authGateway, weatherGateway, locationGateway)
	catalogUseCase := usecase.NewCatalogUseCase(pointRepo, navigationGateway)
	bookingUseCase := usecase.NewBookingUseCase(sessionRepo, pointRepo)
	rewardsUseCase := usecase.NewRewardsUseCase(sessionRepo, rewardRepo)
	notificationUseCase := usecase.NewNotificationUseCase(sessionRepo)

	authHandler := handlers.NewAuthHandler(sessionUseCase, jwtSecret)
	pointHandler := handlers.NewSupportPointHandler(catalogUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	rewardsHandler := handlers.NewRewardsHandler(rewardsUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCourierRoutes(v1, jwtSecret, courierHandlers{
		auth:          authHandler,
		points:        pointHandler,
		bookings:      bookingHandler,
		rewards:       rewardsHandler,
		notifications: notificationHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
	router.Use(middleware.RateLimiter(rate.Limit(20), 40))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package routes

import (
	"net/http"
	"os"
	"strconv"

	_ "oficina_xyz/docs" // swag-generated
	"oficina_xyz/internal/adapter/http/handlers"
	"oficina_xyz/internal/adapter/http/middleware"
	"oficina_xyz/internal/adapter/persistence/repository"
	"oficina_xyz/internal/infrastructure/ai"
	"oficina_xyz/internal/infrastructure/database"
	"oficina_xyz/internal/infrastructure/payments"
	"oficina_xyz/internal/usecase"
	"oficina_xyz/internal/usecase/interfaces"
	"oficina_xyz/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run wires the dependency graph and starts the server.
func Run() {
	setMiddlewares()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal().Err(err).Msg("failed to start the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	stockRepo := repository.NewStockItemDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	mechanicRepo := repository.NewMechanicDynamoRepository(ddb)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)
	profileRepo := repository.NewProfileDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		logger.Warn().Err(err).Msg("mercado pago gateway not configured; card payments disabled")
	} else {
		paymentGateway = mpGateway
	}

	var aiClient interfaces.IAIClient
	openaiClient, err := ai.NewOpenAIClientFromEnv()
	if err != nil {
		logger.Warn().Err(err).Msg("ai client not configured; assistant endpoints disabled")
	} else {
		aiClient = openaiClient
	}

	stockUseCase := usecase.NewStockUseCase(stockRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, stockRepo, transactionRepo, mechanicRepo, paymentGateway)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)
	financeUseCase := usecase.NewFinanceUseCase(transactionRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, transactionRepo)
	aiUseCase := usecase.NewAIUseCase(aiClient)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)

	stockHandler := handlers.NewStockHandler(stockUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	aiHandler := handlers.NewAIHandler(aiUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.TenantAuth())
	addWorkshopRoutes(v1, workshopHandlers{
		stock:     stockHandler,
		orders:    orderHandler,
		mechanics: mechanicHandler,
		finance:   financeHandler,
		dashboard: dashboardHandler,
		ai:        aiHandler,
		profile:   profileHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

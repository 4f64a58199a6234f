package routes

import (
	"os"
	"strconv"
	"strings"

	_ "swapcred/docs" // swag-generated documentation
	"swapcred/internal/adapter/http/handlers"
	"swapcred/internal/adapter/http/middleware"
	repository2 "swapcred/internal/adapter/persistence/repository"
	"swapcred/internal/infrastructure/commerce"
	"swapcred/internal/infrastructure/database"
	"swapcred/internal/infrastructure/logging"
	"swapcred/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = 8080

// Run will start the server
func Run() {
	logging.Setup()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	exchangeRepo := repository2.NewExchangeDynamoRepository(ddb)
	warehouseRepo := repository2.NewWarehouseDynamoRepository(ddb)
	ledgerRepo := repository2.NewCreditLedgerDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	gateway, err := commerce.NewShopifyGateway(os.Getenv("SHOPIFY_STORE_URL"), os.Getenv("SHOPIFY_ACCESS_TOKEN"))
	if err != nil {
		log.Fatal().Err(err).Msg("credit ledger gateway not configured")
	}

	cfg := usecase.ExchangeConfigFromEnv()
	exchangeUseCase := usecase.NewExchangeUseCase(exchangeRepo, warehouseRepo, ledgerRepo, gateway, userRepo, cfg)
	warehouseUseCase := usecase.NewWarehouseUseCase(warehouseRepo, userRepo)
	creditUseCase := usecase.NewCreditUseCase(ledgerRepo, gateway, userRepo)

	exchangeHandler := handlers.NewExchangeHandler(exchangeUseCase)
	adminExchangeHandler := handlers.NewAdminExchangeHandler(exchangeUseCase)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseUseCase)
	creditHandler := handlers.NewCreditHandler(creditUseCase)

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.RequireAuth([]byte(secret)))
	authed.Use(middleware.RateLimit(middleware.NewLimiterFromEnv()))
	addExchangeRoutes(authed, exchangeHandler, creditHandler)
	addAdminRoutes(authed, adminExchangeHandler, warehouseHandler, creditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

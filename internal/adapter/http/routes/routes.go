package routes

import (
	"log"
	_ "logiportal/docs" // This will be auto-generated
	"logiportal/internal/adapter/http/handlers"
	repository2 "logiportal/internal/adapter/persistence/repository"
	"logiportal/internal/infrastructure/database"
	"logiportal/internal/infrastructure/geo"
	"logiportal/internal/infrastructure/payments"
	"logiportal/internal/usecase"
	"logiportal/internal/usecase/interfaces"
	"os"
	"strconv"

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

	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	commerceRepo := repository2.NewCommerceDynamoRepository(ddb)
	tariffRepo := repository2.NewTariffDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	distances, err := geo.NewHTTPDistanceProvider(os.Getenv("DISTANCE_API_URL"), newDistanceCache())
	if err != nil {
		log.Fatalf("Failed to configure distance provider: %v", err)
	}

	billingUseCase := usecase.NewBillingUseCase(commerceRepo, invoiceRepo, paymentGateway)
	pricingUseCase := usecase.NewPricingUseCase(tariffRepo, distances, commerceRepo)

	billingHandler := handlers.NewBillingHandler(billingUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, billingHandler, pricingHandler)
}

func newDistanceCache() geo.DistanceCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return geo.NoopDistanceCache{}
	}

	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cache := geo.NewRedisDistanceCache(addr, os.Getenv("REDIS_PASSWORD"), db)
	log.Printf("[distance][cache] redis cache enabled addr=%s db=%d", addr, db)
	return cache
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

package routes

import (
	"strconv"

	_ "github.com/CVO-TreeAi/treeshop-production-sub002/docs" // generated swagger docs
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/handlers"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/persistence/repository"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/infrastructure/config"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/infrastructure/database"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/infrastructure/location"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/infrastructure/payments"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/infrastructure/token"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.ServicePort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	proposalRepo := repository.NewProposalDynamoRepository(ddb, cfg.Tables.Proposals, cfg.Tables.ApprovalTokens)
	tokenStore := repository.NewApprovalTokenDynamoRepository(ddb, cfg.Tables.ApprovalTokens)

	tokenManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	verifier := location.NewHTTPVerifier(cfg.Location.BaseURL, cfg.Location.Timeout)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(cfg.Pricing, verifier)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, tokenStore, tokenManager, paymentGateway, usecase.ProposalConfig{
		TaxRate:       cfg.Pricing.TaxRate,
		DepositRate:   cfg.Pricing.DepositRate,
		ValidityDays:  cfg.Pricing.ValidityDays,
		Currency:      cfg.Payment.Currency,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	approvalHandler := handlers.NewApprovalHandler(proposalUseCase, cfg.Payment.WebhookSecret)

	addPingRoutes(router)

	v1 := router.Group("/v1")
	addQuoteRoutes(v1, quoteHandler)
	addProposalRoutes(v1, proposalHandler, approvalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

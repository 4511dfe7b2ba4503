package app

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/solacehq/solace-payment-service/config"
	"github.com/solacehq/solace-payment-service/internal/auth"
	handlers "github.com/solacehq/solace-payment-service/internal/handlers"
	"github.com/solacehq/solace-payment-service/internal/models"
	"github.com/solacehq/solace-payment-service/internal/publisher"
	"github.com/solacehq/solace-payment-service/internal/razorpay"
	"github.com/solacehq/solace-payment-service/internal/repository/posgrest"
	"github.com/solacehq/solace-payment-service/internal/service"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Bookings are written through the service-role connection only.
	serviceDB, err := cfg.DB.GormConnectServiceRole()
	if err != nil {
		log.Fatalf("failed to connect to database with service role: %v", err)
	}

	if err := serviceDB.AutoMigrate(&models.Booking{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	listenerRepo := posgrest.New[models.Listener](db)
	bookingRepo := posgrest.New[models.Booking](serviceDB)

	tokens := auth.NewTokenVerifier(cfg.Auth.JWTSecret)
	gateway := razorpay.NewClient(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.BaseURL,
		cfg.Razorpay.RequestTimeout,
		cfg.Razorpay.OrderCacheTTL,
	)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	publisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	orderService := service.NewOrderService(gateway, listenerRepo, tokens)
	settlementService := service.NewSettlementService(cfg.Razorpay.KeySecret, bookingRepo, tokens, publisher)
	paymentHandler := handlers.NewPaymentHandler(orderService, settlementService)

	a.Router = gin.New()
	a.Router.Use(gin.Logger())
	a.Router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	a.Router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	a.RegisterRoutes(paymentHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

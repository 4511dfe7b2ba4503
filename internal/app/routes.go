package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/solacehq/solace-payment-service/internal/handlers"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	a.Router.POST("/create-order", h.CreateOrder)
	a.Router.POST("/verify-payment", h.VerifyPayment)
}

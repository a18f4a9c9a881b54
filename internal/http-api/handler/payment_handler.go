package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cursohub/internal/http-api/dto"
	"cursohub/internal/http-api/models"
	"cursohub/internal/http-api/repository"
	"cursohub/internal/http-api/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	userRepo       repository.UserRepository
}

func NewPaymentHandler(paymentService service.PaymentService, userRepo repository.UserRepository) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, userRepo: userRepo}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-checkout", h.CreateCheckout)
	rg.GET("/status/:id", h.Status)
}

// RegisterWebhookRoutes wires the provider callback; it is authenticated by
// the shared secret, not by a user token.
func (h *PaymentHandler) RegisterWebhookRoutes(rg *gin.RouterGroup, secretKey string) {
	rg.POST("/webhook", h.Webhook(secretKey))
}

func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	email := c.GetString("email")

	user, err := h.userRepo.FindByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	// Paying twice is a no-op; send the client straight to the success page.
	if user.IsPaid || user.Status == models.StatusActive {
		c.JSON(http.StatusConflict, gin.H{"error": "course already purchased"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	session, err := h.paymentService.CreateCheckout(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		CheckoutURL: session.ProviderURL,
		Reference:   session.ID,
	})
}

func (h *PaymentHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := h.paymentService.Status(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentStatusResponse{
		Reference: c.Param("id"),
		Status:    status,
	})
}

func (h *PaymentHandler) Webhook(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" || c.GetHeader("X-Webhook-Secret") != secretKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook signature"})
			return
		}

		var req dto.WebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.paymentService.HandleWebhook(ctx, req.Reference, req.Status); err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "checkout session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	}
}

package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"restaurant_platform/internal/services"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	userService         services.UserService
	paymentService      services.PaymentService
	clerkWebhookSecret  string
	stripeWebhookSecret string
}

func NewWebhookHandler(userService services.UserService, paymentService services.PaymentService, clerkSecret, stripeSecret string) *WebhookHandler {
	return &WebhookHandler{
		userService:         userService,
		paymentService:      paymentService,
		clerkWebhookSecret:  clerkSecret,
		stripeWebhookSecret: stripeSecret,
	}
}

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func verifySignature(secret, signature string, payload []byte) bool {
	expected := signPayload(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

type clerkWebhookPayload struct {
	Type string                  `json:"type"`
	Data services.ClerkUserEvent `json:"data"`
}

// HandleClerkWebhook mirrors identity-provider user events into the local
// users table. The raw body is authenticated with an HMAC-SHA256 signature
// before any parsing happens.
func (h *WebhookHandler) HandleClerkWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if !verifySignature(h.clerkWebhookSecret, c.GetHeader("Clerk-Signature"), body) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload clerkWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	switch payload.Type {
	case "user.created", "user.updated":
		user, err := h.userService.SyncFromClerk(&payload.Data)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"synced": user.ClerkID})
	case "user.deleted":
		user, err := h.userService.GetUserByClerkID(payload.Data.ClerkID)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := h.userService.DeleteUser(user.ID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": payload.Data.ClerkID})
	default:
		// Unrecognized event types are acknowledged so the provider
		// stops retrying them.
		c.JSON(http.StatusOK, gin.H{"ignored": payload.Type})
	}
}

type stripeWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string `json:"id"`
			PaymentIntent string `json:"payment_intent"`
		} `json:"object"`
	} `json:"data"`
}

// stripeSignatureValue extracts the v1 component from a Stripe-Signature
// header of the form "t=<ts>,v1=<hex>".
func stripeSignatureValue(header string) string {
	for _, part := range strings.Split(header, ",") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(part), "v1="); ok {
			return value
		}
	}
	return ""
}

// HandleStripeWebhook applies processor payment events to stored payments.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	signature := stripeSignatureValue(c.GetHeader("Stripe-Signature"))
	if !verifySignature(h.stripeWebhookSecret, signature, body) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var payload stripeWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// charge.refunded carries the intent in payment_intent; the
	// payment_intent.* events carry it in the object id.
	intentID := payload.Data.Object.ID
	if payload.Data.Object.PaymentIntent != "" {
		intentID = payload.Data.Object.PaymentIntent
	}

	if err := h.paymentService.HandleStripeEvent(payload.Type, intentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"savanna_back_end/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	CartMaxRequests    = 20 // ajouts panier par minute et par session
	PaymentMaxRequests = 10 // initiations de paiement par minute et par IP

	rateWindow = 1 * time.Minute
)

// CartRateLimit limite les mutations du panier (anti-spam)
func CartRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID == "" {
			c.Next()
			return
		}

		key := "cart_add:" + sessionID
		requests, err := cache.IncrementRateLimit(key, rateWindow)
		if err != nil {
			// Redis indisponible : on laisse passer plutôt que de bloquer la boutique
			c.Next()
			return
		}

		if requests > CartMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Trop d'ajouts au panier. Ralentissez un peu",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// PaymentRateLimit limite les initiations de paiement par IP
func PaymentRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "payment_init:" + c.ClientIP()
		requests, err := cache.IncrementRateLimit(key, rateWindow)
		if err != nil {
			c.Next()
			return
		}

		if requests > PaymentMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Trop de tentatives de paiement. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", PaymentMaxRequests))
		c.Next()
	}
}

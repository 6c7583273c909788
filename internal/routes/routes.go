package routes

import (
	"net/http"

	"savanna_back_end/internal/handlers"
	"savanna_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Les endpoints de paiement n'acceptent que POST : toute autre méthode → 405
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "message": "Method not allowed"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", handlers.ListProducts)

		cartGroup := api.Group("/cart", middleware.CartSession())
		{
			cartGroup.GET("", handlers.GetCart)
			cartGroup.POST("/add", middleware.CartRateLimit(), handlers.AddToCart)
			cartGroup.PUT("/:productId", handlers.UpdateCartItem)
			cartGroup.DELETE("/:productId", handlers.RemoveFromCart)
			cartGroup.DELETE("", handlers.ClearCart)
		}

		payment := api.Group("/payment", middleware.PaymentRateLimit())
		{
			payment.POST("/initiate", handlers.InitiatePayment)
			payment.POST("/update", handlers.UpdatePaymentStatus)
		}

		api.POST("/checkout/express", middleware.PaymentRateLimit(), handlers.StartExpressCheckout)
		api.GET("/checkout/:reference", handlers.GetExpressCheckout)
	}

	// Pages de résultat
	r.GET("/checkout/success", handlers.CheckoutSuccess)
	r.GET("/checkout/failure", handlers.CheckoutFailure)
}

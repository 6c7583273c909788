package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages de confirmation statiques — le front redirige ici en fin de parcours

const successPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Payment successful — Savanna</title></head>
<body>
  <h1>✅ Payment successful</h1>
  <p>Thank you for your order. Your payment has been confirmed.</p>
  <p><a href="/">Back to the shop</a></p>
</body>
</html>`

const failurePage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Payment failed — Savanna</title></head>
<body>
  <h1>❌ Payment failed</h1>
  <p>%s</p>
  <p><a href="/">Back to the shop</a></p>
</body>
</html>`

//
// GET /checkout/success
//
func CheckoutSuccess(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage))
}

//
// GET /checkout/failure?error=...
//
func CheckoutFailure(c *gin.Context) {
	message := c.Query("error")
	if message == "" {
		message = "Your payment could not be completed."
	}
	// Le message vient d'un query param : échappé avant rendu
	page := fmt.Sprintf(failurePage, html.EscapeString(message))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

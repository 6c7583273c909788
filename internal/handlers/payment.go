package handlers

import (
	"log"
	"net/http"

	"savanna_back_end/internal/checkout"
	"savanna_back_end/internal/config"
	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 💳 POST /api/payment/initiate
//
func InitiatePayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	if req.Method != models.MethodWeb && req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number required for mobile payments"})
		return
	}

	// L'e-mail est pré-rempli depuis la configuration côté page checkout ;
	// repli sur l'e-mail marchand si le client n'en envoie pas.
	email := req.Email
	if email == "" {
		email = config.MerchantEmail()
	}

	// Le scénario simulé ne voyage jamais en production
	if config.IsProduction() {
		req.Scenario = models.ScenarioNone
	}

	var result models.PaymentInitiationResult
	if req.Method == models.MethodWeb {
		result = Gateway.CreateWebPayment(c.Request.Context(), req.Items, email)
	} else {
		// l'alias "mobile" est résolu ici : le client passerelle ne reçoit
		// que des méthodes concrètes (ecocash/onemoney)
		result = Gateway.CreateMobilePayment(c.Request.Context(), req.Items, email, req.Phone, gateway.ResolveMethod(req.Method))
	}

	if !result.Success {
		log.Printf("❌ Initiation paiement refusée (%s): %s", req.Method, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": result.Error})
		return
	}

	log.Printf("💳 Paiement initié : %s (%s)", result.Reference, req.Method)
	// Résultat de la passerelle transmis tel quel
	c.JSON(http.StatusOK, result)
}

//
// 📱 POST /api/payment/update
//
func UpdatePaymentStatus(c *gin.Context) {
	var req struct {
		PollURL   string          `json:"pollUrl"`
		Phone     string          `json:"phone"`
		StartTime int64           `json:"startTime"`
		Scenario  models.Scenario `json:"scenario"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.PollURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "status": models.StatusFailed, "message": "Poll URL is required"})
		return
	}

	st := models.PollState{
		PollURL:   req.PollURL,
		Phone:     req.Phone,
		Scenario:  req.Scenario,
		StartTime: req.StartTime,
	}

	status, err := Resolver.Resolve(c.Request.Context(), st)
	if err != nil {
		// Jamais d'erreur transport brute vers le client : toujours emballée
		log.Printf("⚠️ Poll passerelle en échec: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"status":  models.StatusFailed,
			"message": err.Error(),
		})
		return
	}

	resp := gin.H{
		"success": status.Status == models.StatusPaid,
		"status":  status.Status,
	}
	if status.Message != "" {
		resp["message"] = status.Message
	}
	c.JSON(http.StatusOK, resp)
}

//
// 📲 POST /api/checkout/express — session express pilotée côté serveur
//
func StartExpressCheckout(c *gin.Context) {
	var req struct {
		Name     string            `json:"name"`
		Email    string            `json:"email"`
		Phone    string            `json:"phone"`
		Method   string            `json:"paymentMethod"`
		Items    []models.CartItem `json:"items"`
		Scenario models.Scenario   `json:"scenario"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	sub := checkout.Submission{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Method:   req.Method,
		Items:    req.Items,
		Scenario: req.Scenario,
	}
	if sub.Email == "" {
		sub.Email = config.MerchantEmail()
	}
	if config.IsProduction() {
		sub.Scenario = models.ScenarioNone
	}

	if errs := checkout.Validate(sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "errors": errs})
		return
	}

	snap, err := Sessions.StartExpress(c.Request.Context(), sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": snap})
}

//
// 🔎 GET /api/checkout/:reference
//
func GetExpressCheckout(c *gin.Context) {
	reference := c.Param("reference")

	snap, err := Sessions.Get(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load checkout session"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Checkout session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session": snap})
}

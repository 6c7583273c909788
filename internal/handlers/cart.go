package handlers

import (
	"net/http"

	"savanna_back_end/internal/cart"
	"savanna_back_end/internal/catalog"
	"savanna_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	items, err := CartDB.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": cart.Total(items),
		"count": cart.Count(items),
	})
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantité invalide"})
		return
	}

	// 🧩 Le prix fait foi côté catalogue, jamais côté client
	product, err := catalog.Find(c.Request.Context(), Redis, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture catalogue"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Produit introuvable"})
		return
	}

	items, err := CartDB.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture panier"})
		return
	}

	items = cart.Add(items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  input.Quantity,
		ImageURL:  product.ImageURL,
	})

	if err := CartDB.Save(c.Request.Context(), sessionID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
		"total":   cart.Total(items),
	})
}

//
// 🔁 PUT /api/cart/:productId
//
func UpdateCartItem(c *gin.Context) {
	sessionID := c.GetString("session_id")
	productID := c.Param("productId")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantité invalide"})
		return
	}

	items, err := CartDB.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture panier"})
		return
	}

	items = cart.UpdateQuantity(items, productID, input.Quantity)

	if err := CartDB.Save(c.Request.Context(), sessionID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier mis à jour",
		"items":   items,
		"total":   cart.Total(items),
	})
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	productID := c.Param("productId")

	items, err := CartDB.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture panier"})
		return
	}

	items = cart.Remove(items, productID)

	if err := CartDB.Save(c.Request.Context(), sessionID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
		"total":   cart.Total(items),
	})
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := CartDB.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur suppression panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé",
		"items":   []models.CartItem{},
		"total":   0,
	})
}

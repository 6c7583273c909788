package handlers

import (
	"net/http"

	"savanna_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

//
// 🏪 GET /api/products
//
func ListProducts(c *gin.Context) {
	products, err := catalog.List(c.Request.Context(), Redis)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erreur lecture catalogue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "savanna_cart"
	// Aligné sur le TTL du panier dans Redis
	sessionMaxAge = 86400 * 30
)

var store *sessions.CookieStore

// InitSessionStore configure le store de cookies de session panier
func InitSessionStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "savanna-dev-secret"
		log.Println("⚠️ SESSION_SECRET manquant — secret de développement utilisé")
	}

	store = sessions.NewCookieStore([]byte(secret))
	store.MaxAge(sessionMaxAge)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// CartSession attribue un identifiant de session anonyme au visiteur.
// Pas d'authentification ici : le cookie ne fait que nommer son panier.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, sessionName)

		id, ok := session.Values["id"].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			session.Values["id"] = id
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Erreur sauvegarde cookie session: %v", err)
			}
		}

		c.Set("session_id", id)
		c.Next()
	}
}

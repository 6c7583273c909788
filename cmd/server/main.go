package main

import (
	"context"
	"log"
	"os"

	"savanna_back_end/internal/cache"
	"savanna_back_end/internal/cart"
	"savanna_back_end/internal/catalog"
	"savanna_back_end/internal/checkout"
	"savanna_back_end/internal/config"
	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/handlers"
	"savanna_back_end/internal/middleware"
	"savanna_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	// Identifiants de passerelle obligatoires : échec dur au démarrage
	client, err := gateway.NewHTTPClient(gateway.Config{
		BaseURL:        os.Getenv("GATEWAY_URL"),
		IntegrationID:  config.MustGet("GATEWAY_INTEGRATION_ID"),
		IntegrationKey: config.MustGet("GATEWAY_INTEGRATION_KEY"),
		MerchantEmail:  config.MerchantEmail(),
		ResultURL:      os.Getenv("GATEWAY_RESULT_URL"),
		ReturnURL:      os.Getenv("GATEWAY_RETURN_URL"),
	})
	if err != nil {
		log.Fatalf("❌ Impossible d'initialiser la passerelle de paiement : %v", err)
	}
	log.Println("✅ Passerelle de paiement initialisée")

	if err := cache.InitRedis(); err != nil {
		log.Fatalf("❌ Échec initialisation Redis: %v", err)
	}
	defer cache.CloseRedis()

	if err := catalog.Seed(context.Background(), cache.RedisClient); err != nil {
		log.Fatalf("❌ Échec initialisation catalogue: %v", err)
	}

	middleware.InitSessionStore()

	resolver := checkout.NewResolver(client, config.IsProduction())
	sessions := checkout.NewManager(client, resolver, cache.RedisClient)
	defer sessions.Close()

	handlers.Configure(client, resolver, cart.NewStore(cache.RedisClient), sessions, cache.RedisClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("⚠️ Mode sandbox actif — scénarios de paiement simulés disponibles")
	}

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Savanna lancé sur le port", port)
	r.Run(":" + port)
}

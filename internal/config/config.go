package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Get retourne une variable d'environnement, avec valeur par défaut
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustGet retourne une variable obligatoire (fatal si absente)
func MustGet(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("❌ Variable d'environnement manquante : %s", key)
	}
	return v
}

// IsProduction indique si on tourne en production (la simulation de paiement est alors désactivée)
func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

// MerchantEmail retourne l'e-mail marchand pré-rempli sur la page checkout
func MerchantEmail() string {
	return Get("MERCHANT_EMAIL", "caisse@savanna.co.zw")
}

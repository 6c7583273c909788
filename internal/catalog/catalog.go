package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"savanna_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	productsKey = "catalog:products"
	catalogTTL  = 24 * time.Hour
)

// Catalogue de démonstration — la gestion produits n'est pas dans le périmètre,
// la boutique a juste besoin de quelque chose à vendre.
var seed = []models.Product{
	{ID: "mbira-22", Name: "Mbira nyunga nyunga", Description: "Mbira 15 lames, caisse en mubvamaropa", Price: 45.00, ImageURL: "/img/mbira.jpg"},
	{ID: "basket-tonga", Name: "Panier Tonga", Description: "Panier tressé à la main, motif éclair", Price: 28.50, ImageURL: "/img/basket.jpg"},
	{ID: "coffee-1kg", Name: "Café des Honde Valley", Description: "Grains arabica torréfiés, 1 kg", Price: 19.995, ImageURL: "/img/coffee.jpg"},
	{ID: "chitenge-3m", Name: "Tissu chitenge", Description: "Coupon de 3 mètres, imprimé wax", Price: 12.75, ImageURL: "/img/chitenge.jpg"},
	{ID: "serpentine-hippo", Name: "Hippopotame en serpentine", Description: "Sculpture des ateliers de Tengenenge", Price: 60.00, ImageURL: "/img/hippo.jpg"},
}

// Seed écrit le catalogue de démo dans Redis au démarrage
func Seed(ctx context.Context, rdb *redis.Client) error {
	data, err := json.Marshal(seed)
	if err != nil {
		return err
	}
	if err := rdb.Set(ctx, productsKey, data, catalogTTL).Err(); err != nil {
		return err
	}
	log.Printf("✅ Catalogue initialisé (%d produits)", len(seed))
	return nil
}

// List retourne les produits depuis Redis, avec re-seed si la clé a expiré
func List(ctx context.Context, rdb *redis.Client) ([]models.Product, error) {
	data, err := rdb.Get(ctx, productsKey).Result()
	if err == redis.Nil {
		if err := Seed(ctx, rdb); err != nil {
			return nil, err
		}
		return append([]models.Product(nil), seed...), nil
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Find retourne un produit par identifiant (nil si introuvable)
func Find(ctx context.Context, rdb *redis.Client, id string) (*models.Product, error) {
	products, err := List(ctx, rdb)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

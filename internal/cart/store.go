package cart

import (
	"context"
	"encoding/json"
	"time"

	"savanna_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// TTL aligné sur la durée de vie du cookie de session (30 jours)
const cartTTL = 30 * 24 * time.Hour

// Store persiste les paniers de session dans Redis sous "cart:<sessionID>"
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get récupère le panier d'une session (vide si inexistant)
func (s *Store) Get(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if err == redis.Nil || data == "" {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save enregistre le snapshot du panier (30 jours)
func (s *Store) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sessionID), data, cartTTL).Err()
}

// Clear supprime le panier d'une session
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}

func key(sessionID string) string {
	return "cart:" + sessionID
}

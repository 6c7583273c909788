package handlers

import (
	"savanna_back_end/internal/cart"
	"savanna_back_end/internal/checkout"
	"savanna_back_end/internal/gateway"

	"github.com/redis/go-redis/v9"
)

// Dépendances partagées des handlers, câblées une fois au démarrage
var (
	Gateway  gateway.Client
	Resolver *checkout.Resolver
	CartDB   *cart.Store
	Sessions *checkout.Manager
	Redis    *redis.Client
)

// Configure injecte les collaborateurs des handlers
func Configure(client gateway.Client, resolver *checkout.Resolver, store *cart.Store, sessions *checkout.Manager, rdb *redis.Client) {
	Gateway = client
	Resolver = resolver
	CartDB = store
	Sessions = sessions
	Redis = rdb
}

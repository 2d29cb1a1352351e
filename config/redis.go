package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a client for the listing feed cache, or nil when
// REDIS_ADDR is unset or the server is unreachable. The cache is strictly
// optional; everything works against the DB alone.
func ConnectRedis() *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Println("REDIS_ADDR not set; listing feed cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis at %s unreachable, cache disabled: %v", addr, err)
		return nil
	}

	log.Printf("Redis cache connected at %s", addr)
	return client
}

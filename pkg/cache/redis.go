package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The server initializes one shared Redis client at startup. Feature services
// reach it through Client() and treat a nil return as "run without caching";
// layout reads then always hit Postgres and availability overlays are fetched
// fresh on every preview.

// Config holds the Redis connection settings.
type Config struct {
	Address  string
	Password string
	DB       int
}

// RedisConfig mirrors the Redis section of the server configuration so main
// can pass it through without rebuilding it field by field. Addr wins over
// Host:Port when both are set.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

var sharedClient *redis.Client

// Init connects the shared client and verifies the connection with a ping.
func Init(cfg Config) error {
	if cfg.Address == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	sharedClient = client
	return nil
}

// InitWithRedisConfig initializes the shared client from the server
// configuration's Redis section.
func InitWithRedisConfig(rc RedisConfig) error {
	address := rc.Addr
	if address == "" {
		address = rc.Host + ":" + rc.Port
	}
	return Init(Config{
		Address:  address,
		Password: rc.Password,
		DB:       rc.DB,
	})
}

// Client returns the shared Redis client, or nil when Init has not succeeded.
func Client() *redis.Client {
	return sharedClient
}

// Close closes the shared client connection.
func Close() error {
	if sharedClient == nil {
		return fmt.Errorf("redis client is not initialized")
	}
	if err := sharedClient.Close(); err != nil {
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}
	sharedClient = nil
	return nil
}

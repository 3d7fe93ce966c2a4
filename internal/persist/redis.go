package persist

// This file defines the Redis snapshot driver.  Connection parameters
// are loaded from environment variables.  If the connection cannot be
// established during startup, NewRedis returns nil and the caller
// should degrade gracefully to another driver.

import (
	"context"
	"crypto/tls"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotKey is the Redis key holding the serialized booking state.
const snapshotKey = "restaurant-booking-state"

// Redis stores the snapshot as a single string value.
type Redis struct {
	client *redis.Client
}

// NewRedis instantiates a Redis driver using environment variables.
// Supported variables are:
//   REDIS_HOST and REDIS_PORT: hostname and port of the Redis server
//   REDIS_ADDR: host:port shorthand (host/port take precedence when both are set)
//   REDIS_PASSWORD: optional password
//   REDIS_DB: database number (default 0)
//   REDIS_TLS: enable TLS when "true" or "1"
// The returned driver may be nil if a connection cannot be established.
func NewRedis() *Redis {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	addr := os.Getenv("REDIS_ADDR")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	pwd := os.Getenv("REDIS_PASSWORD")
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	var tlsConf *tls.Config
	if tlsEnv := os.Getenv("REDIS_TLS"); strings.EqualFold(tlsEnv, "true") || tlsEnv == "1" {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  pwd,
		DB:        dbNum,
		TLSConfig: tlsConf,
	})
	// Ping the server with a short timeout.  Return nil on failure.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return &Redis{client: client}
}

// Load fetches the snapshot value.  An absent key maps to ErrNoData.
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return data, nil
}

// Save overwrites the snapshot value.  No TTL: the snapshot lives until
// the next save.
func (r *Redis) Save(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, snapshotKey, data, 0).Err()
}
